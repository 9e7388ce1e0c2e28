package main

import (
	"encoding/binary"
	"encoding/json"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
)

var (
	problemsBucket = []byte("problems")
	plansBucket    = []byte("plans")
)

// ResultsDb stores problems and their removal plans, keyed by problem
// id.
type ResultsDb struct {
	db *bolt.DB
}

func OpenResultsDb(path string) (*ResultsDb, error) {
	db, err := bolt.Open(path, 0666, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open results db %s", path)
	}
	defer func() {
		if db != nil {
			db.Close()
		}
	}()
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{problemsBucket, plansBucket} {
			_, err := tx.CreateBucketIfNotExists(name)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resultsDb := &ResultsDb{
		db: db,
	}
	db = nil
	return resultsDb, nil
}

func (db *ResultsDb) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

func makeByteKey(id int64) []byte {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutVarint(buf, id)
	return buf[:n]
}

func (db *ResultsDb) putJson(bucket []byte, id int64, o interface{}) error {
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}
	key := makeByteKey(id)
	return db.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put(key, data)
	})
}

func (db *ResultsDb) getJson(bucket []byte, id int64, o interface{}) (bool, error) {
	key := makeByteKey(id)
	found := false
	err := db.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucket).Get(key)
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, o)
	})
	return found, err
}

func (db *ResultsDb) PutProblem(p *Problem) error {
	return db.putJson(problemsBucket, p.Id, p)
}

func (db *ResultsDb) GetProblem(id int64) (*Problem, error) {
	p := &Problem{}
	ok, err := db.getJson(problemsBucket, id, p)
	if !ok {
		p = nil
	}
	return p, err
}

// PutPlan stores the plan computed for a problem. A nil plan records an
// infeasible problem.
func (db *ResultsDb) PutPlan(id int64, plan *Plan) error {
	if plan == nil {
		plan = &Plan{Removable: -1}
	}
	return db.putJson(plansBucket, id, plan)
}

func (db *ResultsDb) GetPlan(id int64) (*Plan, error) {
	plan := &Plan{}
	ok, err := db.getJson(plansBucket, id, plan)
	if !ok {
		plan = nil
	}
	return plan, err
}
