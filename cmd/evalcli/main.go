package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"resume-engine/internal/evaluation"
	"resume-engine/internal/fit"
	"resume-engine/internal/gaps"
	"resume-engine/internal/resume"
)

// evalcli scores a parsed-resume JSON file from the command line, optionally
// against a job description, and prints the result as JSON.
func main() {
	resumePath := flag.String("resume", "", "path to a parsed resume JSON file (required)")
	jobPath := flag.String("job", "", "path to a job description text file (optional)")
	pretty := flag.Bool("pretty", true, "indent the JSON output")
	flag.Parse()

	if *resumePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*resumePath)
	if err != nil {
		log.Fatalf("read resume: %v", err)
	}
	var r resume.ParsedResume
	if err := json.Unmarshal(data, &r); err != nil {
		log.Fatalf("parse resume JSON: %v", err)
	}

	generic := evaluation.New()

	var out any
	if *jobPath != "" {
		jobText, err := os.ReadFile(*jobPath)
		if err != nil {
			log.Fatalf("read job description: %v", err)
		}
		req, err := gaps.ParseJobDescription(string(jobText))
		if err != nil {
			log.Fatalf("parse job description: %v", err)
		}
		score, err := fit.New(generic).Evaluate(&r, "", req)
		if err != nil {
			log.Fatalf("evaluate fit: %v", err)
		}
		out = score
	} else {
		result, err := generic.Evaluate(&r, "")
		if err != nil {
			log.Fatalf("evaluate: %v", err)
		}
		out = result
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		log.Fatalf("write output: %v", err)
	}
}
