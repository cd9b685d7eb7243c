package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// profile mirrors the start-hunt request body.
type profile struct {
	Name            string   `yaml:"name" json:"name,omitempty"`
	Major           string   `yaml:"major" json:"major"`
	GPA             float64  `yaml:"gpa" json:"gpa"`
	TargetCountries []string `yaml:"target_countries" json:"targetCountries"`
	SpecialPowers   []string `yaml:"special_powers" json:"specialPowers,omitempty"`
	GradYear        string   `yaml:"grad_year" json:"gradYear,omitempty"`
}

func main() {
	server := flag.String("server", "http://localhost:8081", "scholarship hunter base URL")
	file := flag.String("profile", "", "YAML profile file")
	major := flag.String("major", "", "major, when no profile file is given")
	gpa := flag.Float64("gpa", 0, "GPA, when no profile file is given")
	countries := flag.String("countries", "", "comma separated target countries")
	flag.Parse()

	p := profile{Major: *major, GPA: *gpa}
	for _, c := range strings.Split(*countries, ",") {
		if c = strings.TrimSpace(c); c != "" {
			p.TargetCountries = append(p.TargetCountries, c)
		}
	}
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			fmt.Printf("Error reading profile: %v\n", err)
			os.Exit(1)
		}
		if err := yaml.Unmarshal(data, &p); err != nil {
			fmt.Printf("Error parsing profile: %v\n", err)
			os.Exit(1)
		}
	}

	body, err := json.Marshal(p)
	if err != nil {
		fmt.Printf("Error encoding profile: %v\n", err)
		os.Exit(1)
	}
	url := strings.TrimRight(*server, "/") + "/api/start-hunt"
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 3 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	out, _ := io.ReadAll(resp.Body)
	fmt.Printf("Response Status: %s\n%s\n", resp.Status, out)
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}
