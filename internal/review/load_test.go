package review

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_HeaderMappedAndFiltered(t *testing.T) {
	input := strings.Join([]string{
		"id,Content,rating,AUTHOR",
		`1,"Fast, clean and simple",5,ana`,
		"2,too short,1,ben",
		"3,a perfectly fine review,4,",
		`4,"It crashed twice, then worked",2,cy`,
		"5",
	}, "\n")

	reviews, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, Review{Author: "ana", Content: "Fast, clean and simple"}, reviews[0])
	assert.Equal(t, "cy", reviews[1].Author)
}

func TestParse_MissingColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("author,body\nana,something long enough\n"))
	require.ErrorIs(t, err, ErrMissingColumn)

	_, err = Parse(strings.NewReader(""))
	require.ErrorIs(t, err, ErrMissingColumn)
}

func TestParse_ByteOrderMark(t *testing.T) {
	reviews, err := Parse(strings.NewReader("\ufeffauthor,content\nana,more than ten runes\n"))
	require.NoError(t, err)
	require.Len(t, reviews, 1)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviews.csv")
	require.NoError(t, os.WriteFile(path, []byte("author,content\nana,more than ten runes\n"), 0o600))

	reviews, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, "unused.csv")
	require.ErrorIs(t, err, context.Canceled)
}
