package mysql

// LAST_INSERT_ID(id) makes the duplicate path report the existing row's
// id through res.LastInsertId().
const upsertCompanySQL = `
INSERT INTO companies (name)
VALUES (?)
ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)
`

const upsertToneSQL = `
INSERT INTO tones (name)
VALUES (?)
ON DUPLICATE KEY UPDATE name = VALUES(name)
`

const upsertProductSQL = `
INSERT INTO products
  (id, company_id, category, name, introduce_text, tone, raw)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  company_id     = VALUES(company_id),
  category       = VALUES(category),
  name           = VALUES(name),
  introduce_text = VALUES(introduce_text),
  tone           = VALUES(tone),
  raw            = VALUES(raw),
  updated_at     = CURRENT_TIMESTAMP
`

const insertSatisfactionSQL = `
INSERT INTO satisfaction_events (user_id, product_id, tone)
VALUES (?, ?, ?)
`

const insertMissSQL = `
INSERT INTO catalog_misses (id, http_status, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE seen_at = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// The four pre-aggregated fetches. Events join through products to pick
// up the company/category of the product the user reacted to; grouping
// is by (group key, tone) so the service layer can select the top tone
// per group.

const wholePlatformSQL = `
SELECT c.name, e.tone, COUNT(*) AS cnt
FROM satisfaction_events e
JOIN products p  ON p.id = e.product_id
JOIN companies c ON c.id = p.company_id
GROUP BY c.name, e.tone
ORDER BY c.name, cnt DESC, e.tone
`

const minePlatformSQL = `
SELECT c.name, e.tone, COUNT(*) AS cnt
FROM satisfaction_events e
JOIN products p  ON p.id = e.product_id
JOIN companies c ON c.id = p.company_id
WHERE e.user_id = ?
GROUP BY c.name, e.tone
ORDER BY c.name, cnt DESC, e.tone
`

const wholeCategorySQL = `
SELECT p.category, e.tone, COUNT(*) AS cnt
FROM satisfaction_events e
JOIN products p ON p.id = e.product_id
GROUP BY p.category, e.tone
ORDER BY p.category, cnt DESC, e.tone
`

const mineCategorySQL = `
SELECT p.category, e.tone, COUNT(*) AS cnt
FROM satisfaction_events e
JOIN products p ON p.id = e.product_id
WHERE e.user_id = ?
GROUP BY p.category, e.tone
ORDER BY p.category, cnt DESC, e.tone
`

const allCompaniesSQL = `SELECT name FROM companies ORDER BY name`

const allTonesSQL = `SELECT name FROM tones ORDER BY name`
