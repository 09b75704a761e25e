package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

const apiBase = "http://localhost:8080/api/v1"

type ingestReport struct {
	BatchID    string `json:"batch_id"`
	Collection string `json:"collection"`
	Received   int    `json:"received"`
	Inserted   int64  `json:"inserted"`
	Skipped    int64  `json:"skipped"`
}

type totalsRow struct {
	PlayerBrefID string `json:"player_bref_id"`
	SeasonYear   int    `json:"season_year"`
	TeamAbbrev   string `json:"team_abbrev"`
	PlayerName   string `json:"player_name"`
	Games        int    `json:"games"`
	Points       int    `json:"points"`
	Assists      int    `json:"assists"`
}

func ingest(collection string, rows any) (*ingestReport, error) {
	body, _ := json.Marshal(rows)

	resp, err := http.Post(apiBase+"/ingest/"+collection, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ingest failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var report ingestReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	return &report, nil
}

func fetchLeaders(year int) (map[string][]map[string]any, error) {
	resp, err := http.Get(fmt.Sprintf("%s/leaders/%d", apiBase, year))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("leaders failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var leaders map[string][]map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&leaders); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	return leaders, nil
}

func main() {
	rows := []totalsRow{
		{"jordami01", 1988, "CHI", "Michael Jordan", 82, 2868, 485},
		{"birdla01", 1988, "BOS", "Larry Bird", 76, 2275, 467},
		{"stockjo01", 1988, "UTA", "John Stockton", 82, 1204, 1128},
	}

	report, err := ingest("player_season_totals", rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("batch %s: received=%d inserted=%d skipped=%d\n",
		report.BatchID, report.Received, report.Inserted, report.Skipped)

	leaders, err := fetchLeaders(1988)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for _, metric := range []string{"points", "assists"} {
		fmt.Printf("\n%s leaders:\n", metric)
		for i, row := range leaders[metric] {
			fmt.Printf("  %2d. %-20v %v (%v/g)\n", i+1, row["player_name"], row["value"], row["per_game"])
		}
	}
}
