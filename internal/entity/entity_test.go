package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntity(t *testing.T) {
	e := New("http://example.org/os/1")
	assert.Equal(t, "http://example.org/os/1", e.ID())

	t.Run("set replaces and add appends", func(t *testing.T) {
		e.Add("variant", "server")
		e.Add("variant", "workstation")
		assert.Equal(t, []string{"server", "workstation"}, e.GetAll("variant"))
		e.Set("variant", "everything")
		assert.Equal(t, []string{"everything"}, e.GetAll("variant"))
	})

	t.Run("get first", func(t *testing.T) {
		e.Add("variant", "minimal")
		value, ok := e.Get("variant")
		assert.True(t, ok)
		assert.Equal(t, "everything", value)
		_, ok = e.Get("absent")
		assert.False(t, ok)
		assert.Empty(t, e.GetAll("absent"))
	})

	t.Run("clear", func(t *testing.T) {
		e.Clear("variant")
		assert.False(t, e.Has("variant"))
		assert.NotContains(t, e.Keys(), "variant")
	})

	t.Run("get all is a copy", func(t *testing.T) {
		e.Set("architecture", "x86_64")
		values := e.GetAll("architecture")
		values[0] = "i686"
		assert.Equal(t, "x86_64", e.String("architecture"))
	})

	t.Run("keys are case sensitive and sorted", func(t *testing.T) {
		e.Set("Architecture", "aarch64")
		assert.Equal(t, []string{"Architecture", "architecture"}, e.Keys())
		assert.Equal(t, map[string][]string{"Architecture": {"aarch64"}, "architecture": {"x86_64"}}, e.Params())
	})

	t.Run("empty id panics", func(t *testing.T) {
		assert.Panics(t, func() { New("") })
	})
}

func TestBool(t *testing.T) {
	e := New("e")
	for value, expected := range map[string]bool{
		"true": true, "yes": true, "false": false, "no": false, "TRUE": false, "1": false,
	} {
		e.Set("live", value)
		assert.Equal(t, expected, e.Bool("live"), value)
	}
	e.Clear("live")
	assert.False(t, e.Bool("live"))
	assert.True(t, e.BoolDefault("live", true))
	e.SetBool("live", true)
	assert.Equal(t, "true", e.String("live"))
	assert.True(t, e.BoolDefault("live", false))
}

func TestInt(t *testing.T) {
	e := New("e")
	assert.Equal(t, int64(-1), e.Int("ram", -1))
	for value, expected := range map[string]int64{
		"1073741824": 1073741824,
		"0x10":       16,
		"010":        8,
		"-4":         -4,
		"lots":       -1,
		"":           -1,
	} {
		e.Set("ram", value)
		assert.Equal(t, expected, e.Int("ram", -1), value)
	}
	e.SetInt("ram", 2048)
	assert.Equal(t, "2048", e.String("ram"))
}

func TestEnum(t *testing.T) {
	nicks := Nicks{"released": 0, "snapshot": 1, "prerelease": 2, "rolling": 3}
	e := New("e")

	_, ok := e.Enum("release-status", nicks)
	assert.False(t, ok)
	assert.Equal(t, 0, e.EnumDefault("release-status", nicks, 0))

	e.Set("release-status", "rolling")
	code, ok := e.Enum("release-status", nicks)
	assert.True(t, ok)
	assert.Equal(t, 3, code)

	e.Set("release-status", "bogus")
	assert.Panics(t, func() { e.Enum("release-status", nicks) })
	assert.Equal(t, 1, e.EnumDefault("release-status", nicks, 1))

	e.SetEnum("release-status", nicks, 2)
	assert.Equal(t, "prerelease", e.String("release-status"))
	assert.Panics(t, func() { e.SetEnum("release-status", nicks, 9) })
}

func TestClone(t *testing.T) {
	e := New("e")
	e.Set("ram", "1")
	clone := e.Clone()
	clone.Set("ram", "2")
	assert.Equal(t, "1", e.String("ram"))
	assert.Equal(t, "e", clone.ID())

	renamed := e.WithID("f")
	assert.Equal(t, "f", renamed.ID())
	assert.Equal(t, "1", renamed.String("ram"))
	assert.Equal(t, "e", e.ID())
}
