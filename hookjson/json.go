// Package hookjson provides ready-made filters for hooks whose value is a
// JSON document. Each constructor returns a func(string) string suitable for
// registration with hookline.Add or a Hook[string] handle.
//
//	doc := hookline.NewHook[string](reg, "render_payload")
//	doc.Add(10, hookjson.Set("meta.source", "hookline"))
//	doc.Add(20, hookjson.Delete("internal"))
//
// The filters are best-effort: a malformed path leaves the document
// unchanged rather than failing the apply pass.
package hookjson

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Set returns a filter that sets the value at a gjson path.
func Set(path string, value any) func(string) string {
	return func(doc string) string {
		out, err := sjson.Set(doc, path, value)
		if err != nil {
			return doc
		}
		return out
	}
}

// SetRaw returns a filter that splices a raw JSON fragment in at a path.
func SetRaw(path, raw string) func(string) string {
	return func(doc string) string {
		out, err := sjson.SetRaw(doc, path, raw)
		if err != nil {
			return doc
		}
		return out
	}
}

// Delete returns a filter that removes the value at a path.
func Delete(path string) func(string) string {
	return func(doc string) string {
		out, err := sjson.Delete(doc, path)
		if err != nil {
			return doc
		}
		return out
	}
}

// Pick returns a filter that rebuilds the document keeping only the given
// paths. Paths absent from the input are omitted from the output.
func Pick(paths ...string) func(string) string {
	return func(doc string) string {
		out := "{}"
		for _, path := range paths {
			r := gjson.Get(doc, path)
			if !r.Exists() {
				continue
			}
			next, err := sjson.SetRaw(out, path, r.Raw)
			if err != nil {
				continue
			}
			out = next
		}
		return out
	}
}

// When returns a filter that applies fn only when the value at path has the
// given string form (gjson's Result.String rendering); otherwise the
// document passes through unchanged.
func When(path, expect string, fn func(string) string) func(string) string {
	return func(doc string) string {
		if gjson.Get(doc, path).String() != expect {
			return doc
		}
		return fn(doc)
	}
}
