package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Problem is one line of a problems file.
type Problem struct {
	Id    int64  `json:"id"`
	N     int    `json:"n"`
	Edges []Edge `json:"edges"`
}

// ReadProblems decodes a JSON lines stream of problems. Blank lines are
// ignored.
func ReadProblems(r io.Reader) ([]*Problem, error) {
	problems := []*Problem{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}
		p := &Problem{}
		err := json.Unmarshal(data, p)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		problems = append(problems, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return problems, nil
}

func WriteProblem(w io.Writer, p *Problem) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
