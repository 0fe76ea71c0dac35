// seed_catalog.go loads a YAML catalog file and seeds attributes, lookup
// entries, and alternatives through the blade admin API.
//
// Usage:
//
//	go run scripts/seed_catalog.go -catalog catalog.yaml -api http://localhost:8700 -token $BLADE_ADMIN_TOKEN
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Attributes []struct {
		Name             string `yaml:"name" json:"name"`
		DefaultDirection string `yaml:"default_direction" json:"default_direction"`
		Datatype         string `yaml:"datatype" json:"datatype"`
		Position         int    `yaml:"position" json:"position"`
	} `yaml:"attributes"`
	Lookup       map[string]float64 `yaml:"lookup"`
	Alternatives []struct {
		Name       string                 `yaml:"name" json:"name"`
		Attributes map[string]interface{} `yaml:"attributes" json:"attributes"`
		Info       map[string]interface{} `yaml:"info" json:"info,omitempty"`
	} `yaml:"alternatives"`
}

func main() {
	catalogPath := flag.String("catalog", "catalog.yaml", "path to catalog YAML file")
	apiURL := flag.String("api", "http://localhost:8700", "blade API base URL")
	token := flag.String("token", "", "admin bearer token")
	dryRun := flag.Bool("dry-run", false, "print items without posting")
	flag.Parse()

	data, err := os.ReadFile(*catalogPath)
	if err != nil {
		log.Fatalf("read catalog: %v", err)
	}

	var cat catalogFile
	if err := yaml.Unmarshal(data, &cat); err != nil {
		log.Fatalf("parse catalog: %v", err)
	}

	post := func(method, path string, body interface{}) {
		payload, _ := json.Marshal(body)
		if *dryRun {
			fmt.Printf("%s %s %s\n", method, path, payload)
			return
		}
		req, err := http.NewRequest(method, *apiURL+path, bytes.NewReader(payload))
		if err != nil {
			log.Fatalf("build request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if *token != "" {
			req.Header.Set("Authorization", "Bearer "+*token)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Fatalf("%s %s: %v", method, path, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 300 {
			log.Fatalf("%s %s: status %d", method, path, resp.StatusCode)
		}
	}

	for _, a := range cat.Attributes {
		post(http.MethodPost, "/api/v1/attributes", a)
	}
	for label, value := range cat.Lookup {
		post(http.MethodPut, "/api/v1/lookup/"+label, map[string]float64{"value": value})
	}
	for _, alt := range cat.Alternatives {
		post(http.MethodPost, "/api/v1/alternatives", alt)
	}

	fmt.Printf("seeded %d attributes, %d lookup entries, %d alternatives\n",
		len(cat.Attributes), len(cat.Lookup), len(cat.Alternatives))
}
