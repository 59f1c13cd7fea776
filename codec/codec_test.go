package codec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/dataset"
	"github.com/reoring/dataset/codec"
)

func TestStringConverters(t *testing.T) {
	tests := []struct {
		name string
		conv dataset.Converter
		in   any
		want any
	}{
		{"identity", codec.Identity(), 42, 42},
		{"lower", codec.Lower(), "Alice", "alice"},
		{"upper", codec.Upper(), "nnp", "NNP"},
		{"trim", codec.TrimSpace(), "  Bob ", "Bob"},
		{"snake", codec.SnakeCase(), "PartOfSpeech", "part_of_speech"},
		{"camel", codec.CamelCase(), "part_of_speech", "PartOfSpeech"},
		{"lower missing", codec.Lower(), nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.conv.Convert(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringConverters_RejectNonString(t *testing.T) {
	_, err := codec.Lower().Convert(3)
	assert.Error(t, err)
}

func TestNumberConverters(t *testing.T) {
	v, err := codec.Int().Convert("12")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	f, err := codec.Float().Convert("0.5")
	require.NoError(t, err)
	assert.Equal(t, 0.5, f)

	m, err := codec.Int().Convert(nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	_, err = codec.Int().Convert("twelve")
	assert.Error(t, err)
}

func TestVocab(t *testing.T) {
	conv := codec.Vocab(map[string]int{"alice": 1, "bob": 2}, 0)

	got, err := conv.Convert("bob")
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = conv.Convert("carol")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestChain(t *testing.T) {
	conv := codec.Chain(codec.TrimSpace(), codec.Lower(), codec.Vocab(map[string]int{"alice": 7}, -1))
	got, err := conv.Convert(" Alice ")
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	boom := errors.New("boom")
	failing := dataset.FuncE(func(any) (any, error) { return nil, boom })
	_, err = codec.Chain(codec.Lower(), failing).Convert("x")
	assert.ErrorIs(t, err, boom)
}

func TestConvertDatasetColumns(t *testing.T) {
	d := dataset.MustNew(
		dataset.Column{Name: "word", Values: []any{"Alice", "Bob"}},
		dataset.Column{Name: "count", Values: []any{"3", nil}},
	)
	out, err := d.Convert(map[string]dataset.Converter{
		"word":  codec.Lower(),
		"count": codec.Int(),
	}, false)
	require.NoError(t, err)

	words, _ := out.Column("word")
	counts, _ := out.Column("count")
	assert.Equal(t, []any{"alice", "bob"}, words)
	assert.Equal(t, []any{3, nil}, counts)

	orig, _ := d.Column("word")
	assert.Equal(t, []any{"Alice", "Bob"}, orig)
}
