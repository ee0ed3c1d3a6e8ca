package filter

import (
	"net/url"
	"strconv"
	"strings"
)

// Query-string keys.
const (
	paramQuery     = "q"
	paramRegion    = "region"
	paramBrand     = "brand"
	paramRadius    = "r"
	paramSort      = "sort"
	paramFavorites = "fav"
)

// Load reads the recognized keys of v into a State. Absent keys, and values
// outside the known enumerations, leave the field at its default.
func Load(v url.Values) State {
	st := Default()
	if q, ok := lookup(v, paramQuery); ok {
		st.Query = q
	}
	if r, ok := lookup(v, paramRegion); ok {
		st.Region = r
	}
	if b, ok := lookup(v, paramBrand); ok && validBrand(b) {
		st.Brand = b
	}
	if r, ok := lookup(v, paramRadius); ok && r != All {
		if m, err := strconv.ParseFloat(r, 64); err == nil && m > 0 {
			st.Radius = m
		}
	}
	if s, ok := lookup(v, paramSort); ok && SortOrder(s).Valid() {
		st.Sort = SortOrder(s)
	}
	if f, ok := lookup(v, paramFavorites); ok {
		st.FavoritesOnly = f == "1" || strings.EqualFold(f, "true")
	}
	return st
}

// Save renders st as query values, omitting every field equal to its default.
func Save(st State) url.Values {
	def := Default()
	v := url.Values{}
	if st.Query != def.Query {
		v.Set(paramQuery, st.Query)
	}
	if st.Region != def.Region {
		v.Set(paramRegion, st.Region)
	}
	if st.Brand != def.Brand {
		v.Set(paramBrand, st.Brand)
	}
	if st.Radius > 0 {
		v.Set(paramRadius, strconv.FormatFloat(st.Radius, 'f', -1, 64))
	}
	if st.Sort != def.Sort {
		v.Set(paramSort, string(st.Sort))
	}
	if st.FavoritesOnly {
		v.Set(paramFavorites, "1")
	}
	return v
}

// ParseQuery is Load over a raw query string. Malformed pairs are skipped.
func ParseQuery(raw string) State {
	v, _ := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	return Load(v)
}

func lookup(v url.Values, key string) (string, bool) {
	vals, ok := v[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}
