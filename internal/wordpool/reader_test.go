package wordpool

import (
	"encoding/json"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_MarshalJSONKeepsOrder(t *testing.T) {
	p := Group([]string{"tree", "cat", "at", "dog"})

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"4":["tree"],"3":["cat","dog"],"2":["at"]}`, string(data))
}

func TestPool_MarshalEmpty(t *testing.T) {
	data, err := json.Marshal(NewPool())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestPool_JSONRoundTrip(t *testing.T) {
	p := Group([]string{"cat", "dog", "at", "it", "tree", "ünï"})

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var back Pool
	require.NoError(t, json.Unmarshal(data, &back))
	if diff := cmp.Diff(snapshot(p), snapshot(&back)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPool_UnmarshalStrict(t *testing.T) {
	var p Pool
	assert.Error(t, json.Unmarshal([]byte(`{"x": ["a"]}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"1": "a"}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"1": [1]}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`[]`), &p))
}

func TestReadCombined_Lenient(t *testing.T) {
	in := `{"3": ["cat", 7, "dog"], "name": ["ignored"], "2": "nope", "1": ["a"]}`

	p, err := ReadCombined(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, p.Lengths())
	assert.Equal(t, []string{"cat", "dog"}, p.Words(3))
	assert.Equal(t, []string{"a"}, p.Words(1))
}

func TestReadCombined_NonObjectIsEmpty(t *testing.T) {
	p, err := ReadCombined(strings.NewReader(`["a", "b"]`))
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
}

func TestReadCombinedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "word_pools.json")
	require.NoError(t, os.WriteFile(path, []byte("{\n  \"2\": [\n    \"at\"\n  ]\n}"), 0644))

	p, err := ReadCombinedFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"at"}, p.Words(2))

	_, err = ReadCombinedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestPool_Bucket(t *testing.T) {
	p := Group([]string{"abc", "abcde", "abcdefg"})

	tests := []struct {
		target int
		want   int
	}{
		{3, 3},
		{4, 3},
		{5, 5},
		{6, 5},
		{100, 7},
		{2, 7}, // nothing at or below 2: largest length
		{0, 7},
		{-4, 7},
	}
	for _, tt := range tests {
		got, ok := p.Bucket(tt.target)
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "target %d", tt.target)
	}

	_, ok := NewPool().Bucket(3)
	assert.False(t, ok)
}

func TestPool_BucketSkipsEmptyString(t *testing.T) {
	p := Group([]string{"", "abcde"})
	require.Equal(t, []int{0, 5}, p.Lengths())

	for _, target := range []int{-1, 0, 1, 3} {
		got, ok := p.Bucket(target)
		require.True(t, ok)
		assert.Equal(t, 5, got, "target %d", target)
	}

	word, ok := p.Pick(3, rand.New(rand.NewPCG(1, 2)))
	require.True(t, ok)
	assert.Equal(t, "abcde", word)

	// Only the empty string: it is still the largest group.
	got, ok := Group([]string{""}).Bucket(4)
	require.True(t, ok)
	assert.Equal(t, 0, got)
}

func TestPool_PickIsDeterministicWithSeed(t *testing.T) {
	p := Group([]string{"cat", "dog", "owl", "at"})

	a, ok := p.Pick(3, rand.New(rand.NewPCG(1, 2)))
	require.True(t, ok)
	b, _ := p.Pick(3, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, a, b)
	assert.Contains(t, []string{"cat", "dog", "owl"}, a)

	_, ok = NewPool().Pick(3, rand.New(rand.NewPCG(1, 2)))
	assert.False(t, ok)
}
