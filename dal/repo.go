package dal

import (
	"bluebot/shared"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"github.com/mattn/go-sqlite3"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_repo.go -package mocks bluebot/dal IRepo

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

type IRepo interface {
	InitUpdateDb()
	AddJobRun(run *JobRun) error
	GetJobRunCount(jobName string) (int, error)
	GetLastJobRun(jobName string) (*JobRun, error)
	AddPublishedPost(post *PublishedPost) error
	GetRecentPosts(maxCount int) ([]*PublishedPost, error)
	MarkTopicUsed(hash int64, when time.Time) (alreadyUsed bool, err error)
	PurgeUsedTopics(olderThan time.Time) (int, error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Infof("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Debugf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Infof("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		if _, err = repo.db.Exec(string(sqlBytes)); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

func (repo *Repo) AddJobRun(run *JobRun) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	ok := 0
	if run.Ok {
		ok = 1
	}
	_, err := repo.db.Exec(`INSERT INTO job_runs (job_name, run_at, ok, error) VALUES (?, ?, ?, ?)`,
		run.JobName, run.RunAt, ok, run.Error)
	return err
}

func (repo *Repo) GetJobRunCount(jobName string) (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM job_runs WHERE job_name=?`, jobName)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// GetLastJobRun returns nil, nil if the job never ran.
func (repo *Repo) GetLastJobRun(jobName string) (*JobRun, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT job_name, run_at, ok, error FROM job_runs
		WHERE job_name=? ORDER BY run_at DESC, id DESC LIMIT 1`, jobName)
	var res JobRun
	var ok int
	err := row.Scan(&res.JobName, &res.RunAt, &ok, &res.Error)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	res.Ok = ok != 0
	return &res, nil
}

func (repo *Repo) AddPublishedPost(post *PublishedPost) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT OR IGNORE INTO published_posts
		(uri, cid, kind, text, reply_to, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		post.Uri, post.Cid, post.Kind, post.Text, post.ReplyTo, post.CreatedAt)
	return err
}

func (repo *Repo) GetRecentPosts(maxCount int) ([]*PublishedPost, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT uri, cid, kind, text, reply_to, created_at
		FROM published_posts ORDER BY created_at DESC LIMIT ?`, maxCount)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*PublishedPost, 0, maxCount)
	for rows.Next() {
		post := PublishedPost{}
		err = rows.Scan(&post.Uri, &post.Cid, &post.Kind, &post.Text, &post.ReplyTo, &post.CreatedAt)
		if err != nil {
			return nil, err
		}
		res = append(res, &post)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) MarkTopicUsed(hash int64, when time.Time) (alreadyUsed bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err = repo.db.Exec(`INSERT INTO used_topics (hash, used_at) VALUES (?, ?)`, hash, when)
	if err == nil {
		return false, nil
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		// Duplicate key: topic was used before
		if sqliteErr.Code == sqlite3.ErrConstraint &&
			(sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey || sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique) {
			return true, nil
		}
	}
	return false, err
}

func (repo *Repo) PurgeUsedTopics(olderThan time.Time) (int, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`DELETE FROM used_topics WHERE used_at<?`, olderThan)
	if err != nil {
		return 0, err
	}
	count, err := res.RowsAffected()
	return int(count), err
}
