package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyPageKind   = "page_kind"
	KeyPath       = "path"
	KeyProductID  = "product_id"
	KeyTag        = "tag"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
	KeyCategory   = "category"
)

func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func PageKind(k string) slog.Attr     { return slog.String(KeyPageKind, k) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func ProductID(id string) slog.Attr   { return slog.String(KeyProductID, id) }
func Tag(t string) slog.Attr          { return slog.String(KeyTag, t) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Category(c string) slog.Attr     { return slog.String(KeyCategory, c) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
