package condition

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		c, err := New(TypePathExists, "/etc", false, false)
		require.NoError(t, err)
		assert.Equal(t, TypePathExists, c.Type)
		assert.Equal(t, "/etc", c.Parameter)
		assert.Equal(t, ResultUntested, c.Result)
	})

	t.Run("InvalidType", func(t *testing.T) {
		_, err := New(typeMax, "/etc", false, false)
		assert.Error(t, err)
	})

	t.Run("EmptyParameter", func(t *testing.T) {
		_, err := New(TypePathExists, "", false, false)
		assert.Error(t, err)
	})
}

func TestConditionString(t *testing.T) {
	tests := []struct {
		trigger, negate bool
		expected        string
	}{
		{false, false, "ConditionPathExists=/run/foo"},
		{true, false, "ConditionPathExists=|/run/foo"},
		{false, true, "ConditionPathExists=!/run/foo"},
		{true, true, "ConditionPathExists=|!/run/foo"},
	}

	for _, tc := range tests {
		c, err := New(TypePathExists, "/run/foo", tc.trigger, tc.negate)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, c.String())
	}
}

func TestConditionDump(t *testing.T) {
	c, err := New(TypeKernelVersion, ">=5.0", true, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	c.Dump(&buf, "")
	assert.Equal(t, "\tConditionKernelVersion: |>=5.0 untested\n", buf.String())
}

func TestListFilter(t *testing.T) {
	mustNew := func(typ Type, param string) *Condition {
		c, err := New(typ, param, false, false)
		require.NoError(t, err)
		return c
	}

	list := List{
		mustNew(TypePathExists, "/a"),
		mustNew(TypeMemory, "1G"),
		mustNew(TypePathExists, "/b"),
	}

	filtered := list.Filter(TypePathExists)
	require.Len(t, filtered, 1)
	assert.Equal(t, TypeMemory, filtered[0].Type)

	// The original list is left alone.
	assert.Len(t, list, 3)
}

func TestParse(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		c, isAssert, err := Parse("ConditionPathExists=/etc/machine-id")
		require.NoError(t, err)
		assert.False(t, isAssert)
		assert.Equal(t, TypePathExists, c.Type)
		assert.Equal(t, "/etc/machine-id", c.Parameter)
		assert.False(t, c.Trigger)
		assert.False(t, c.Negate)
	})

	t.Run("Markers", func(t *testing.T) {
		c, _, err := Parse("ConditionKernelCommandLine=|!quiet")
		require.NoError(t, err)
		assert.True(t, c.Trigger)
		assert.True(t, c.Negate)
		assert.Equal(t, "quiet", c.Parameter)
	})

	t.Run("Assert", func(t *testing.T) {
		c, isAssert, err := Parse("AssertPathExists=!/etc")
		require.NoError(t, err)
		assert.True(t, isAssert)
		assert.Equal(t, TypePathExists, c.Type)
		assert.True(t, c.Negate)
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, _, err := Parse("ConditionBogus=/etc")
		assert.Error(t, err)
	})

	t.Run("NotAnAssignment", func(t *testing.T) {
		_, _, err := Parse("ConditionPathExists")
		assert.Error(t, err)
	})

	t.Run("EmptyValue", func(t *testing.T) {
		_, _, err := Parse("ConditionPathExists=|!")
		assert.Error(t, err)
	})
}

func TestTypeNames(t *testing.T) {
	for typ := Type(0); typ < typeMax; typ++ {
		name, ok := conditionNames[typ]
		require.True(t, ok, "type %d has no name", int(typ))

		parsed, isAssert, ok := TypeFromName(name)
		require.True(t, ok)
		assert.False(t, isAssert)
		assert.Equal(t, typ, parsed)

		parsed, isAssert, ok = TypeFromName(typ.AssertName())
		require.True(t, ok)
		assert.True(t, isAssert)
		assert.Equal(t, typ, parsed)
	}

	_, _, ok := TypeFromName("ConditionNothing")
	assert.False(t, ok)
}

func TestRegistryComplete(t *testing.T) {
	for typ := Type(0); typ < typeMax; typ++ {
		assert.Contains(t, conditionProbes, typ, "type %s has no probe", typ)
	}
}
