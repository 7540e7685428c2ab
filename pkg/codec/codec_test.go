package codec_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/termgen/internal/testutils"
	"github.com/aretw0/termgen/pkg/codec"
	"github.com/aretw0/termgen/pkg/domain"
	"github.com/aretw0/termgen/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	assert.Equal(t, "a", codec.Serialize(domain.Term{"a"}))
	assert.Equal(t, "f g a b", codec.Serialize(domain.Term{"f", "g", "a", "b"}))
	assert.Equal(t, "", codec.Serialize(nil))
}

func TestRoundTrip(t *testing.T) {
	sig := testutils.ReferenceSignature(t)
	gen, err := generator.New(sig, generator.WithSeed(11))
	require.NoError(t, err)

	for _, term := range gen.GenerateN(500) {
		line := codec.Serialize(term)
		assert.False(t, strings.HasSuffix(line, " "), "trailing separator in %q", line)
		assert.Equal(t, term, codec.Tokenize(line))
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	terms := []domain.Term{{"f", "a", "b"}, {"c"}, {"g", "d"}}

	require.NoError(t, codec.Write(&buf, terms))
	assert.Equal(t, "f a b\nc\ng d\n", buf.String())
}

func TestWrite_NoTerms(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, codec.Write(&buf, nil))
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite_PropagatesErrors(t *testing.T) {
	err := codec.Write(failingWriter{}, []domain.Term{{"a"}})
	assert.ErrorContains(t, err, "disk full")
}

func TestRead(t *testing.T) {
	terms, err := codec.Read(strings.NewReader("f a b\n\n  c  \ng d"))
	require.NoError(t, err)
	assert.Equal(t, []domain.Term{{"f", "a", "b"}, {"c"}, {"g", "d"}}, terms)
}

func TestScan_StopsOnError(t *testing.T) {
	stop := errors.New("stop")
	seen := 0
	err := codec.Scan(strings.NewReader("a\nb\nc\n"), func(domain.Term) error {
		seen++
		if seen == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, seen)
}
