package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Field is one key=value pair of a log line.
type Field struct {
	Key   string
	Value string
}

// Line is a log line written by the logrus text formatter, e.g.
//
//	time="2026-10-18T09:12:01Z" level=warning msg="refresh failed" kind=transport
type Line struct {
	Raw     string
	Time    string
	Level   string
	Message string
	Fields  []Field
}

// Parse splits a logrus text line into its parts. Lines that are not in
// key=value form come back with only Raw and Message set.
func Parse(raw string) Line {
	line := Line{Raw: raw}
	rest := strings.TrimSpace(raw)
	var fields []Field
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 || strings.ContainsAny(rest[:eq], " \t\"") {
			return Line{Raw: raw, Message: raw}
		}
		key := rest[:eq]
		rest = rest[eq+1:]

		var value string
		if strings.HasPrefix(rest, `"`) {
			quoted, err := strconv.QuotedPrefix(rest)
			if err != nil {
				return Line{Raw: raw, Message: raw}
			}
			value, _ = strconv.Unquote(quoted)
			rest = rest[len(quoted):]
		} else {
			end := strings.IndexByte(rest, ' ')
			if end < 0 {
				end = len(rest)
			}
			value = rest[:end]
			rest = rest[end:]
		}
		rest = strings.TrimLeft(rest, " ")

		switch key {
		case "time":
			line.Time = value
		case "level":
			line.Level = value
		case "msg":
			line.Message = value
		default:
			fields = append(fields, Field{Key: key, Value: value})
		}
	}
	line.Fields = fields
	return line
}
