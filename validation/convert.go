package validation

import (
	"database/sql"
	"strconv"
)

func ParseStringToInt64(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func ParseStringToFloat(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}

func GetStringFromNull(s sql.NullString) string {
	if s.Valid {
		return s.String
	}
	return ""
}

func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func FloatPtrFromNull(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

func NullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
