package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringron/internal/method"
	"ringron/pkg/api"
)

func TestWriteMethodsText(t *testing.T) {
	m, err := method.Load("../method/testdata/plain_bob_minimus.mcf")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteMethodsText(&buf, []*method.Method{m}))
	want := "Plain Bob Minimus (4 bells, coverable)\t../method/testdata/plain_bob_minimus.mcf\n" +
		"  1\tPlain Course\t24\tppp\n" +
		"  2\tBob Course\t24\tbbb\n" +
		"  3\tShuffled Touch\t80\tpb - sp - pbps\tmutable\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteMethodsJSON(t *testing.T) {
	m, err := method.Load("../method/testdata/plain_bob_minor.mcf")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteMethodsJSON(&buf, []*method.Method{m}))
	var got []api.MethodV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Plain Bob Minor", got[0].Name)
	assert.Equal(t, 6, got[0].Bells)
	require.Len(t, got[0].Extents, 3)
	assert.Equal(t, api.ExtentInfoV1{ID: 3, Name: "Mutable Touch", Length: 120, Definition: "pppbs - ppspb", Mutable: true}, got[0].Extents[2])
}
