package domain

type Company struct {
	ID   int64
	Name string
}

type Product struct {
	ID            int64
	CompanyID     int64
	Company       string
	Category      string
	Name          string
	IntroduceText string
	Tone          string // tone label of the introduce text
	RawJSON       []byte // full catalog payload
}
