//go:build generate

// This program generates the JIS X 0213 property file from the JIS X 0213:2004
// mapping published by x0213.org. Both planes are read and every character
// that is not already in JIS X 0208 or narrower is written to the table.
//
// With -check the property file is left alone. Instead every character of
// the mapping that ClassifyCharacterSet places wider than JIS X 0213 is
// listed, followed by a summary per character set, and the program fails if
// there is any.
//
//go:generate go run gen_jisx0213.go
//go:generate go run gen_jisx0213.go -check

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log"
	"net/http"
	"os"
	"regexp"
	"slices"
	"strconv"
	"time"
	"unicode"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"

	"github.com/scalecode-solutions/jpnorm"
)

const (
	jisx0213URL = `http://x0213.org/codetable/jisx0213-2004-std.txt`
)

// The regular expression for a mapping line of a single code point, such as
// "3-2421	U+3041	# HIRAGANA LETTER SMALL A". Plane 1 is "3-", plane 2 is
// "4-". Lines mapping to a sequence of code points or to nothing do not match.
var mappingPattern = regexp.MustCompile(`^([34])-([0-9A-F]{4})\s+U\+([0-9A-F]{4,6})\s`)

// mapping is one line of the mapping file.
type mapping struct {
	plane string
	code  string
	r     rune
}

func main() {
	log.SetPrefix("gen_jisx0213: ")
	log.SetFlags(0)
	check := pflag.Bool("check", false, "report characters classified wider than JIS X 0213 instead of generating")
	pflag.Parse()

	mappings, err := parse()
	if err != nil {
		log.Fatal(err)
	}

	if *check {
		if misses := audit(mappings); misses > 0 {
			log.Fatalf("%d characters of JIS X 0213 are classified wider than JISX0213", misses)
		}
		return
	}

	src, err := generate(mappings)
	if err != nil {
		log.Fatal(err)
	}

	// Format the Go code.
	formatted, err := format.Source([]byte(src))
	if err != nil {
		log.Fatal("gofmt:", err)
	}

	// Save it to the target file.
	log.Print("Writing to jisx0213properties.go")
	if err := os.WriteFile("jisx0213properties.go", formatted, 0644); err != nil {
		log.Fatal(err)
	}
}

func parse() ([]mapping, error) {
	log.Printf("Parsing %s", jisx0213URL)
	res, err := http.Get(jisx0213URL)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", jisx0213URL, res.Status)
	}

	var mappings []mapping
	scanner := bufio.NewScanner(res.Body)
	num := 0
	for scanner.Scan() {
		num++
		fields := mappingPattern.FindStringSubmatch(scanner.Text())
		if fields == nil {
			continue
		}
		cp, err := strconv.ParseUint(fields[3], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", num, err)
		}
		mappings = append(mappings, mapping{plane: fields[1], code: fields[2], r: rune(cp)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(mappings) == 0 {
		return nil, errors.New("no mappings found")
	}
	return mappings, nil
}

// generate returns the source of the property file. Consecutive code points
// are merged into one range.
func generate(mappings []mapping) (string, error) {
	var runes []rune
	for _, m := range mappings {
		// The table is consulted after the JIS X 0208 check, so only the
		// characters that check misses are needed.
		if jpnorm.ClassifyCharacterSet(string(m.r)) <= jpnorm.JISX0208 {
			continue
		}
		runes = append(runes, m.r)
	}
	slices.Sort(runes)
	runes = slices.Compact(runes)

	var ranges [][2]rune
	for _, r := range runes {
		if n := len(ranges); n > 0 && ranges[n-1][1] == r-1 {
			ranges[n-1][1] = r
			continue
		}
		ranges = append(ranges, [2]rune{r, r})
	}

	// Avoid overflow during binary search.
	if len(ranges) >= 1<<31 {
		return "", errors.New("too many ranges")
	}

	// Header.
	var buf bytes.Buffer
	buf.WriteString(`// Code generated via go generate from gen_jisx0213.go. DO NOT EDIT.

package jpnorm

// jisx0213CodePoints lists the characters of JIS X 0213 that are not in
// JIS X 0208 or narrower. They are taken from
// ` + jisx0213URL + `
// on ` + time.Now().Format("January 2, 2006") + `.
var jisx0213CodePoints = [][3]int{
`)

	// Ranges.
	for _, rng := range ranges {
		comment := label(rng[0])
		switch {
		case rng[1] == rng[0]+1:
			comment += " " + label(rng[1])
		case rng[1] > rng[0]:
			comment += ".." + label(rng[1])
		}
		fmt.Fprintf(&buf, "\t{0x%04x, 0x%04x, int(JISX0213)}, // %s\n", rng[0], rng[1], comment)
	}

	// Tail.
	buf.WriteString("}\n")

	return buf.String(), nil
}

// label returns r itself, or its U+ notation if it would not show in a
// comment.
func label(r rune) string {
	if unicode.In(r, unicode.C, unicode.M, unicode.Z) {
		return fmt.Sprintf("U+%04X", r)
	}
	return string(r)
}

// audit prints every mapping classified wider than JIS X 0213 and a summary
// per character set. It returns the number of such mappings.
func audit(mappings []mapping) (misses int) {
	counts := make(map[jpnorm.CharacterSet]int)
	for _, m := range mappings {
		set := jpnorm.ClassifyCharacterSet(string(m.r))
		counts[set]++
		if set > jpnorm.JISX0213 {
			misses++
			fmt.Printf("%s-%s\tU+%04X\t%c\t%s\n", m.plane, m.code, m.r, m.r, set)
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Character set", "Code points")
	for set := jpnorm.ASCII; set <= jpnorm.UnicodeOnly; set++ {
		if err := table.Append(set.String(), strconv.Itoa(counts[set])); err != nil {
			log.Fatal(err)
		}
	}
	if err := table.Render(); err != nil {
		log.Fatal(err)
	}
	return misses
}
