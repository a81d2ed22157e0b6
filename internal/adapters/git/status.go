package git

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/renato0307/versioninfo/internal/domain"
)

const detachedHead = "(detached)"

// parseStatus parses `git status --porcelain=v2 --branch` output.
// Detached HEAD yields an empty branch; a missing upstream yields zero ahead/behind.
func parseStatus(out string) (domain.RepoStatus, error) {
	var status domain.RepoStatus

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		switch line[0] {
		case '#':
			if err := parseHeader(line, &status); err != nil {
				return domain.RepoStatus{}, err
			}
		case '1':
			xy, err := entryXY(line)
			if err != nil {
				return domain.RepoStatus{}, err
			}
			countOrdinary(xy, &status)
		case '2':
			xy, err := entryXY(line)
			if err != nil {
				return domain.RepoStatus{}, err
			}
			countRenamed(xy, &status)
		case 'u':
			status.Conflicted++
		case '?':
			status.NotAdded++
		case '!':
			// ignored paths are not reported
		default:
			return domain.RepoStatus{}, fmt.Errorf("unexpected status line: %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.RepoStatus{}, err
	}

	return status, nil
}

// parseHeader reads the branch.* header lines
func parseHeader(line string, status *domain.RepoStatus) error {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil
	}

	switch fields[1] {
	case "branch.head":
		if fields[2] != detachedHead {
			status.Branch = fields[2]
		}
	case "branch.ab":
		if len(fields) < 4 {
			return fmt.Errorf("malformed branch.ab header: %q", line)
		}
		ahead, err := strconv.Atoi(strings.TrimPrefix(fields[2], "+"))
		if err != nil {
			return fmt.Errorf("failed to parse ahead count: %w", err)
		}
		behind, err := strconv.Atoi(strings.TrimPrefix(fields[3], "-"))
		if err != nil {
			return fmt.Errorf("failed to parse behind count: %w", err)
		}
		status.Ahead = ahead
		status.Behind = behind
	}
	return nil
}

// entryXY returns the two-letter index/worktree state of a changed entry
func entryXY(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields[1]) != 2 {
		return "", fmt.Errorf("malformed status entry: %q", line)
	}
	return fields[1], nil
}

// countOrdinary classifies a "1" entry; a path may count in several buckets
func countOrdinary(xy string, status *domain.RepoStatus) {
	x, y := xy[0], xy[1]
	if x == 'A' {
		status.Created++
	}
	if x == 'D' || y == 'D' {
		status.Deleted++
	}
	if x == 'M' || y == 'M' || x == 'T' || y == 'T' {
		status.Modified++
	}
}

// countRenamed classifies a "2" entry (rename or copy)
func countRenamed(xy string, status *domain.RepoStatus) {
	x, y := xy[0], xy[1]
	switch x {
	case 'R':
		status.Renamed++
	case 'C':
		status.Created++
	}
	if y == 'M' || y == 'T' {
		status.Modified++
	}
	if y == 'D' {
		status.Deleted++
	}
}
