// Run with: go run scripts/convert_profiles.go -in raw/ -out data/profiles/default
//
// convert_profiles reads a directory of raw per-language n-gram count
// dumps (one file per language, lines of "ngram\tcount", plus a
// "<lang>.totals" file with three lines giving the 1/2/3-gram totals
// observed before pruning) and writes the on-disk LangProfile JSON
// contract the service actually loads at startup.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type langProfile struct {
	Name   string           `json:"name"`
	NWords [3]int64         `json:"n_words"`
	Freq   map[string]int64 `json:"freq"`
}

func main() {
	inDir := flag.String("in", "raw", "directory of raw per-language count dumps")
	outDir := flag.String("out", "data/profiles/default", "output directory for profile JSON")
	flag.Parse()

	entries, err := os.ReadDir(*inDir)
	if err != nil {
		log.Fatalf("reading input directory: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".counts") {
			continue
		}
		lang := strings.TrimSuffix(e.Name(), ".counts")
		profile, err := convertOne(*inDir, lang)
		if err != nil {
			log.Fatalf("converting %s: %v", lang, err)
		}
		out, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			log.Fatalf("marshaling %s: %v", lang, err)
		}
		outPath := filepath.Join(*outDir, lang+".json")
		if err := os.WriteFile(outPath, out, 0o644); err != nil {
			log.Fatalf("writing %s: %v", outPath, err)
		}
		fmt.Printf("wrote %s (%d n-grams)\n", outPath, len(profile.Freq))
	}
}

func convertOne(inDir, lang string) (langProfile, error) {
	profile := langProfile{Name: lang, Freq: make(map[string]int64)}

	totals, err := readTotals(filepath.Join(inDir, lang+".totals"))
	if err != nil {
		return profile, err
	}
	profile.NWords = totals

	f, err := os.Open(filepath.Join(inDir, lang+".counts"))
	if err != nil {
		return profile, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		count, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			continue
		}
		profile.Freq[parts[0]] = count
	}
	return profile, scanner.Err()
}

func readTotals(path string) ([3]int64, error) {
	var totals [3]int64
	f, err := os.Open(path)
	if err != nil {
		return totals, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 0; i < 3 && scanner.Scan(); i++ {
		v, err := strconv.ParseInt(strings.TrimSpace(scanner.Text()), 10, 64)
		if err != nil {
			return totals, fmt.Errorf("parsing totals line %d: %w", i+1, err)
		}
		totals[i] = v
	}
	return totals, scanner.Err()
}
