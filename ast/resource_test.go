package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irqkit/rtsyntax/ast"
)

func TestResourcesString(t *testing.T) {
	var resources ast.Resources
	require.Equal(t, "[]", resources.String())
	resources.Insert("a", ast.Exclusive)
	resources.Insert("b", ast.Shared)
	resources.Insert("c", ast.Exclusive)
	require.Equal(t, "[a, &b, c]", resources.String())
}

func TestAccess(t *testing.T) {
	require.True(t, ast.Exclusive.IsExclusive())
	require.False(t, ast.Exclusive.IsShared())
	require.True(t, ast.Shared.IsShared())
	require.Equal(t, "Shared", ast.Shared.String())

	resources := &ast.Resources{}
	resources.Insert("x", ast.Shared)
	data, err := json.Marshal(resources)
	require.NoError(t, err)
	require.Equal(t, `{"x":"Shared"}`, string(data))
}

func TestCustomArg(t *testing.T) {
	args := []ast.CustomArg{ast.CustomBool(true), ast.CustomUInt("16")}
	require.Equal(t, "true", args[0].String())
	require.Equal(t, "16", args[1].String())

	n, ok := ast.CustomUInt("16").Uint64()
	require.True(t, ok)
	require.Equal(t, uint64(16), n)
	_, ok = ast.CustomUInt("340282366920938463463374607431768211455").Uint64()
	require.False(t, ok)
}

func TestDefaultSoftwareTaskArgs(t *testing.T) {
	args := ast.DefaultSoftwareTaskArgs()
	require.Equal(t, uint8(1), args.Capacity)
	require.Equal(t, uint8(1), args.Priority)
	require.Equal(t, 0, args.Resources.Len())
}
