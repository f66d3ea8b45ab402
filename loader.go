package jieba

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

func logOrNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// LoadConfigFile decodes an optional TOML configuration file into Options
// (spec §6 "Optional file configuration"). A missing or malformed file is
// an error; there is no requirement to call this at all.
func LoadConfigFile(path string) ([]Option, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, ioErrorf(err, "decode config file %q", path)
	}
	return optionsFromFile(fc), nil
}

// splitDictPaths splits a user-dict path list on '|' or ';', the two
// separators spec §6 documents for supplying multiple user dictionaries
// in one string.
func splitDictPaths(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ';' })
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadBaseDict parses a base dictionary file of "word freq [tag]" lines
// (spec §6 "Base dictionary format"). Blank lines are skipped; anything
// else with fewer than two fields or an unparsable frequency is a hard
// KindMalformedDict error, since the base dictionary defines the weight
// scale every other weight in the system is relative to.
func LoadBaseDict(path string, log *zap.Logger) ([]baseDictLine, error) {
	log = logOrNop(log)
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(err, "open base dict %q", path)
	}
	defer f.Close()

	var lines []baseDictLine
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		fields := strings.Fields(raw)
		if len(fields) < 2 {
			log.Error("malformed base dict line", zap.String("path", path), zap.Int("line", lineNo))
			return nil, malformedDictf("%s:%d: expected at least 2 fields, got %d", path, lineNo, len(fields))
		}
		freq, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			log.Error("malformed base dict frequency", zap.String("path", path), zap.Int("line", lineNo))
			return nil, malformedDictf("%s:%d: bad frequency %q", path, lineNo, fields[1])
		}
		tag := ""
		if len(fields) >= 3 {
			tag = fields[2]
		}
		lines = append(lines, baseDictLine{Word: []rune(fields[0]), Freq: freq, Tag: tag})
	}
	if err := scanner.Err(); err != nil {
		return nil, ioErrorf(err, "read base dict %q", path)
	}
	log.Debug("loaded base dict", zap.String("path", path), zap.Int("entries", len(lines)))
	return lines, nil
}

// LoadUserDict loads one or more user dictionary files (paths separated by
// '|' or ';') into dict. Each line is "word [freq [tag]]"; freq defaults
// to the dictionary's configured weight policy when omitted or <= 0
// (spec §6 "User dictionary format").
func LoadUserDict(dict *Dictionary, pathList string, log *zap.Logger) error {
	log = logOrNop(log)
	for _, path := range splitDictPaths(pathList) {
		if err := loadUserDictFile(dict, path, log); err != nil {
			return err
		}
	}
	return nil
}

func loadUserDictFile(dict *Dictionary, path string, log *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return ioErrorf(err, "open user dict %q", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	count := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		fields := strings.Fields(raw)
		word := []rune(fields[0])
		freq := 0.0
		tag := ""
		if len(fields) >= 2 {
			v, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				log.Error("malformed user dict frequency", zap.String("path", path), zap.Int("line", lineNo))
				return malformedDictf("%s:%d: bad frequency %q", path, lineNo, fields[1])
			}
			freq = v
		}
		if len(fields) >= 3 {
			tag = fields[2]
		}
		dict.InsertUserWord(word, freq, tag)
		count++
	}
	if err := scanner.Err(); err != nil {
		return ioErrorf(err, "read user dict %q", path)
	}
	log.Debug("loaded user dict", zap.String("path", path), zap.Int("entries", count))
	return nil
}

// LoadHMMModel parses the four-state HMM model file format of spec §4.4:
// tab-separated records prefixed with START/TRANS/EMIT, blank lines and
// '#' comments skipped. Example:
//
//	START	B	-0.26
//	TRANS	B	E	-0.51
//	EMIT	B	我	-3.6
func LoadHMMModel(path string, log *zap.Logger) (*HMMModel, error) {
	log = logOrNop(log)
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(err, "open hmm model %q", path)
	}
	defer f.Close()

	stateIndex := map[string]hmmState{"B": stateB, "E": stateE, "M": stateM, "S": stateS}

	var start [4]float64
	var trans [4][4]float64
	emit := [4]map[rune]float64{
		stateB: {}, stateE: {}, stateM: {}, stateS: {},
	}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		fields := strings.Split(raw, "\t")
		if len(fields) < 1 {
			continue
		}
		switch fields[0] {
		case "START":
			if len(fields) != 3 {
				return nil, malformedModelf("%s:%d: START wants 3 fields, got %d", path, lineNo, len(fields))
			}
			s, ok := stateIndex[fields[1]]
			if !ok {
				return nil, malformedModelf("%s:%d: unknown state %q", path, lineNo, fields[1])
			}
			v, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, malformedModelf("%s:%d: bad probability %q", path, lineNo, fields[2])
			}
			start[s] = v
		case "TRANS":
			if len(fields) != 4 {
				return nil, malformedModelf("%s:%d: TRANS wants 4 fields, got %d", path, lineNo, len(fields))
			}
			from, ok := stateIndex[fields[1]]
			if !ok {
				return nil, malformedModelf("%s:%d: unknown state %q", path, lineNo, fields[1])
			}
			to, ok := stateIndex[fields[2]]
			if !ok {
				return nil, malformedModelf("%s:%d: unknown state %q", path, lineNo, fields[2])
			}
			v, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, malformedModelf("%s:%d: bad probability %q", path, lineNo, fields[3])
			}
			trans[from][to] = v
		case "EMIT":
			if len(fields) != 4 {
				return nil, malformedModelf("%s:%d: EMIT wants 4 fields, got %d", path, lineNo, len(fields))
			}
			s, ok := stateIndex[fields[1]]
			if !ok {
				return nil, malformedModelf("%s:%d: unknown state %q", path, lineNo, fields[1])
			}
			rs := []rune(fields[2])
			if len(rs) != 1 {
				return nil, malformedModelf("%s:%d: EMIT symbol must be one rune, got %q", path, lineNo, fields[2])
			}
			v, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, malformedModelf("%s:%d: bad probability %q", path, lineNo, fields[3])
			}
			emit[s][rs[0]] = v
		default:
			log.Error("malformed hmm model record", zap.String("path", path), zap.Int("line", lineNo), zap.String("kind", fields[0]))
			return nil, malformedModelf("%s:%d: unknown record kind %q", path, lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, ioErrorf(err, "read hmm model %q", path)
	}
	log.Debug("loaded hmm model", zap.String("path", path))
	return NewHMMModel(start, trans, emit), nil
}

// LoadIDF parses an IDF corpus file of "word idf" lines (whitespace- or
// tab-separated) into an entries map for NewIDFTable (spec §4.10, §6
// "IDF corpus format").
func LoadIDF(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(err, "open idf corpus %q", path)
	}
	defer f.Close()

	entries := make(map[string]float64)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		fields := strings.Fields(raw)
		if len(fields) != 2 {
			return nil, malformedDictf("%s:%d: expected 2 fields, got %d", path, lineNo, len(fields))
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, malformedDictf("%s:%d: bad idf weight %q", path, lineNo, fields[1])
		}
		entries[fields[0]] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, ioErrorf(err, "read idf corpus %q", path)
	}
	return entries, nil
}

// LoadStopWords parses a stop-word file, one word per line, blank lines
// and '#' comments skipped (spec §6 "Stop-word list format").
func LoadStopWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(err, "open stop words %q", path)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		words = append(words, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, ioErrorf(err, "read stop words %q", path)
	}
	return words, nil
}
