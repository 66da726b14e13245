package store

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/proartlab/proart/internal/survey"
)

// DB manages the survey.db SQLite database that holds the company
// registry and ingested respondents. Reads go through LoadSnapshot so
// the engine only ever sees immutable data.
type DB struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the survey database in the given data directory.
// It initializes the schema if the database is new.
func Open(dataDir string) (*DB, error) {
	dbPath := filepath.Join(dataDir, "survey.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open survey db: %w", err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	d := &DB{db: db, dbPath: dbPath}

	if err := d.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return d, nil
}

// initSchema creates the storage tables if they do not exist.
func (d *DB) initSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS companies (
	id        TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	sector    TEXT NOT NULL DEFAULT '',
	employees INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS respondents (
	id         TEXT PRIMARY KEY,
	company_id TEXT NOT NULL REFERENCES companies(id),
	sex        TEXT NOT NULL DEFAULT 'undeclared',
	age        INTEGER NOT NULL DEFAULT 0,
	sector     TEXT NOT NULL DEFAULT '',
	comment    TEXT NOT NULL DEFAULT '',
	seq        INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS answers (
	respondent_id TEXT NOT NULL REFERENCES respondents(id),
	question_id   TEXT NOT NULL,
	value         INTEGER NOT NULL,
	PRIMARY KEY (respondent_id, question_id)
);

CREATE INDEX IF NOT EXISTS idx_respondents_company ON respondents(company_id);
`
	if _, err := d.db.Exec(ddl); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.dbPath
}

// ImportCompanies upserts companies into the registry.
func (d *DB) ImportCompanies(companies []survey.Company) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO companies (id, name, sector, employees) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare company insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range companies {
		if c.ID == "" {
			return fmt.Errorf("company %q has empty id", c.Name)
		}
		if _, err := stmt.Exec(c.ID, c.Name, c.Sector, c.Employees); err != nil {
			return fmt.Errorf("insert company %q: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

// ImportRespondents upserts respondents and their answers. Respondents
// keep an ingestion sequence so snapshots preserve arrival order.
func (d *DB) ImportRespondents(respondents []survey.Respondent) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	var seq int
	if err := tx.QueryRow("SELECT COALESCE(MAX(seq), 0) FROM respondents").Scan(&seq); err != nil {
		return fmt.Errorf("read sequence: %w", err)
	}

	rstmt, err := tx.Prepare("INSERT OR REPLACE INTO respondents (id, company_id, sex, age, sector, comment, seq) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare respondent insert: %w", err)
	}
	defer rstmt.Close()

	astmt, err := tx.Prepare("INSERT OR REPLACE INTO answers (respondent_id, question_id, value) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare answer insert: %w", err)
	}
	defer astmt.Close()

	for _, r := range respondents {
		if r.ID == "" {
			return fmt.Errorf("respondent with empty id (company %q)", r.CompanyID)
		}
		seq++
		if _, err := rstmt.Exec(r.ID, r.CompanyID, string(r.Sex), r.Age, r.Sector, r.Comment, seq); err != nil {
			return fmt.Errorf("insert respondent %q: %w", r.ID, err)
		}
		if _, err := tx.Exec("DELETE FROM answers WHERE respondent_id = ?", r.ID); err != nil {
			return fmt.Errorf("clear answers for %q: %w", r.ID, err)
		}
		for qid, v := range r.Answers {
			if _, err := astmt.Exec(r.ID, qid, v); err != nil {
				return fmt.Errorf("insert answer %s/%s: %w", r.ID, qid, err)
			}
		}
	}

	return tx.Commit()
}

// LoadSnapshot reads the full store into an immutable Snapshot.
// Answers for question ids absent from the schema are dropped; a stored
// respondent lacking answers still loads (missing answers are tolerated
// at aggregation time).
func (d *DB) LoadSnapshot(schema *survey.Schema) (*Snapshot, error) {
	companies, err := d.loadCompanies()
	if err != nil {
		return nil, err
	}

	respondents, err := d.loadRespondents(schema)
	if err != nil {
		return nil, err
	}

	return NewSnapshot(companies, respondents)
}

func (d *DB) loadCompanies() ([]survey.Company, error) {
	rows, err := d.db.Query("SELECT id, name, sector, employees FROM companies ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	var companies []survey.Company
	for rows.Next() {
		var c survey.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Sector, &c.Employees); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (d *DB) loadRespondents(schema *survey.Schema) ([]survey.Respondent, error) {
	rows, err := d.db.Query("SELECT id, company_id, sex, age, sector, comment FROM respondents ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("query respondents: %w", err)
	}
	defer rows.Close()

	var respondents []survey.Respondent
	index := make(map[string]int)
	for rows.Next() {
		var r survey.Respondent
		var sex string
		if err := rows.Scan(&r.ID, &r.CompanyID, &sex, &r.Age, &r.Sector, &r.Comment); err != nil {
			return nil, fmt.Errorf("scan respondent: %w", err)
		}
		r.Sex, _ = survey.ParseSex(sex)
		r.Answers = make(map[string]int)
		index[r.ID] = len(respondents)
		respondents = append(respondents, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	arows, err := d.db.Query("SELECT respondent_id, question_id, value FROM answers")
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer arows.Close()

	for arows.Next() {
		var rid, qid string
		var v int
		if err := arows.Scan(&rid, &qid, &v); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		i, ok := index[rid]
		if !ok || !schema.HasQuestion(qid) {
			continue
		}
		respondents[i].Answers[qid] = v
	}
	return respondents, arows.Err()
}

// Counts returns the number of stored companies and respondents.
func (d *DB) Counts() (companies, respondents int, err error) {
	if err = d.db.QueryRow("SELECT COUNT(*) FROM companies").Scan(&companies); err != nil {
		return 0, 0, fmt.Errorf("count companies: %w", err)
	}
	if err = d.db.QueryRow("SELECT COUNT(*) FROM respondents").Scan(&respondents); err != nil {
		return 0, 0, fmt.Errorf("count respondents: %w", err)
	}
	return companies, respondents, nil
}
