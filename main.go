package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	app     = kingpin.New("edgerm", "remove redundant edges while keeping alice and bob connected")
	verbose = app.Flag("verbose", "enable debug logging").Bool()
)

func newLogger() (*zap.Logger, error) {
	if *verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func readProblemsFile(path string) ([]*Problem, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	problems, err := ReadProblems(fp)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return problems, nil
}

var (
	solveCmd     = app.Command("solve", "compute removable edge counts")
	solvePath    = solveCmd.Arg("path", "problems file path (JSON lines)").Required().String()
	solveDb      = solveCmd.Flag("db", "results db path").String()
	solveWorkers = solveCmd.Flag("workers", "workers count").Default("1").Int()
)

func solveFn(logger *zap.Logger) error {
	start := time.Now()
	problems, err := readProblemsFile(*solvePath)
	if err != nil {
		return err
	}
	var db *ResultsDb
	if *solveDb != "" {
		db, err = OpenResultsDb(*solveDb)
		if err != nil {
			return err
		}
		defer db.Close()
	}
	results, err := SolveProblems(problems, *solveWorkers, db, logger)
	for _, rs := range results {
		if rs.Err != nil {
			continue
		}
		fmt.Printf("%d: %d\n", rs.Problem.Id, rs.Removable())
	}
	logger.Info("solved problems", zap.Int("count", len(problems)),
		zap.Duration("elapsed", time.Since(start)))
	return err
}

var (
	verifyCmd  = app.Command("verify", "solve problems and check removal plans")
	verifyPath = verifyCmd.Arg("path", "problems file path (JSON lines)").Required().String()
)

func verifyFn(logger *zap.Logger) error {
	problems, err := readProblemsFile(*verifyPath)
	if err != nil {
		return err
	}
	for _, p := range problems {
		plan, err := PlanRemoval(p.N, p.Edges)
		if errors.Is(err, ErrInfeasible) {
			if Connected(p.N, p.Edges, Alice) && Connected(p.N, p.Edges, Bob) {
				return errors.Errorf("problem %d: reported infeasible but both parties are connected", p.Id)
			}
			logger.Debug("infeasible", zap.Int64("id", p.Id))
			continue
		}
		if err != nil {
			return errors.WithMessagef(err, "problem %d", p.Id)
		}
		err = VerifyPlan(p.N, p.Edges, plan)
		if err != nil {
			return errors.WithMessagef(err, "problem %d", p.Id)
		}
		logger.Debug("verified", zap.Int64("id", p.Id), zap.Int("removable", plan.Removable))
	}
	fmt.Printf("verified %d problems\n", len(problems))
	return nil
}

var (
	showCmd = app.Command("show", "print a stored problem and its plan")
	showDb  = showCmd.Arg("db", "results db path").Required().String()
	showId  = showCmd.Arg("id", "problem identifier").Required().Int64()
)

func showFn() error {
	db, err := OpenResultsDb(*showDb)
	if err != nil {
		return err
	}
	defer db.Close()
	p, err := db.GetProblem(*showId)
	if err != nil {
		return err
	}
	plan, err := db.GetPlan(*showId)
	if err != nil {
		return err
	}
	if p == nil || plan == nil {
		return fmt.Errorf("unknown problem: %d", *showId)
	}
	data, err := json.MarshalIndent(struct {
		Problem *Problem `json:"problem"`
		Plan    *Plan    `json:"plan"`
	}{p, plan}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func dispatch() error {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()
	switch cmd {
	case solveCmd.FullCommand():
		return solveFn(logger)
	case verifyCmd.FullCommand():
		return verifyFn(logger)
	case showCmd.FullCommand():
		return showFn()
	}
	return fmt.Errorf("unknown command: %s", cmd)
}

func main() {
	err := dispatch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
