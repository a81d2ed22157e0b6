package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/versioninfo/internal/domain"
)

func TestParseStatus_CleanWithUpstream(t *testing.T) {
	out := "# branch.oid 1234567890abcdef\n" +
		"# branch.head main\n" +
		"# branch.upstream origin/main\n" +
		"# branch.ab +2 -5\n"

	status, err := parseStatus(out)

	require.NoError(t, err)
	assert.Equal(t, domain.RepoStatus{Ahead: 2, Behind: 5, Branch: "main"}, status)
	assert.Equal(t, 0, status.Delta())
}

func TestParseStatus_NoUpstream(t *testing.T) {
	out := "# branch.oid 1234567890abcdef\n# branch.head feature/login\n"

	status, err := parseStatus(out)

	require.NoError(t, err)
	assert.Equal(t, "feature/login", status.Branch)
	assert.Zero(t, status.Ahead)
	assert.Zero(t, status.Behind)
}

func TestParseStatus_DetachedHead(t *testing.T) {
	out := "# branch.oid 1234567890abcdef\n# branch.head (detached)\n"

	status, err := parseStatus(out)

	require.NoError(t, err)
	assert.Empty(t, status.Branch)
}

func TestParseStatus_Entries(t *testing.T) {
	out := "# branch.head main\n" +
		"1 .M N... 100644 100644 100644 aaa aaa modified.txt\n" +
		"1 M. N... 100644 100644 100644 aaa bbb staged.txt\n" +
		"1 .D N... 100644 100644 000000 aaa aaa gone.txt\n" +
		"1 D. N... 100644 000000 000000 aaa 000 removed.txt\n" +
		"1 A. N... 000000 100644 100644 000 bbb new.txt\n" +
		"1 AM N... 000000 100644 100644 000 bbb new-and-edited.txt\n" +
		"2 R. N... 100644 100644 100644 aaa aaa R100 renamed.txt\told.txt\n" +
		"u UU N... 100644 100644 100644 100644 aaa bbb ccc conflict.txt\n" +
		"? untracked one.txt\n" +
		"? untracked-two.txt\n" +
		"! ignored.log\n"

	status, err := parseStatus(out)

	require.NoError(t, err)
	assert.Equal(t, 2, status.NotAdded)
	assert.Equal(t, 2, status.Deleted)
	assert.Equal(t, 3, status.Modified)
	assert.Equal(t, 1, status.Renamed)
	assert.Equal(t, 2, status.Created)
	assert.Equal(t, 1, status.Conflicted)
	assert.Equal(t, 8, status.Delta())
}

func TestParseStatus_Malformed(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{"bad ahead", "# branch.ab +x -1\n"},
		{"bad behind", "# branch.ab +1 -y\n"},
		{"short entry", "1\n"},
		{"unknown line", "garbage\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseStatus(tt.out)
			assert.Error(t, err)
		})
	}
}
