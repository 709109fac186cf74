package foldmap_test

import (
	"fmt"

	"github.com/zero-day-ai/foldmap"
)

func ExampleMap() {
	m := foldmap.New()
	m.Set("Content-Type", "application/json")

	v, _ := m.Get("CONTENT-TYPE")
	fmt.Println(v)
	// Output: application/json
}

func ExampleMap_ValuesAt() {
	m := foldmap.Of("foo", "bar", "BAZ", "qux")

	fmt.Println(m.ValuesAt("FOO", "baz"))
	// Output: [bar qux]
}

func ExampleMap_FetchFunc() {
	m := foldmap.New()

	v := m.FetchFunc("Missing-Key", func(key string) any {
		return "no value for " + key
	})
	fmt.Println(v)
	// Output: no value for Missing-Key
}

func ExampleMap_Replace() {
	m := foldmap.New()
	m.Set("foo", "bar")

	m.Replace(map[string]any{"hi": "bye"})
	fmt.Println(m.Has("foo"), m.FetchDefault("HI", ""))
	// Output: false bye
}

func ExampleFrom() {
	cfg := foldmap.From(map[string]any{
		"Database": map[string]any{"Host": "localhost"},
	})

	db, _ := cfg.Get("DATABASE")
	host, _ := db.(*foldmap.Map).Get("HOST")
	fmt.Println(host)
	// Output: localhost
}

func ExampleTryConvert() {
	_, ok := foldmap.TryConvert("not a map")
	fmt.Println(ok)

	m, ok := foldmap.TryConvert(map[string]any{"Key": 1})
	v, _ := m.Get("KEY")
	fmt.Println(ok, v)
	// Output:
	// false
	// true 1
}
