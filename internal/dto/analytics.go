package dto

// TrendQuery holds the query parameters of the trend endpoint. A weekly
// trend covers the last Count*7 days and may return Count+1 ISO weeks.
type TrendQuery struct {
	Granularity string `query:"granularity" validate:"required,granularity"`
	Count       int    `query:"count" validate:"required,min=1,max=120"`
}

// MonthQuery selects one calendar month
type MonthQuery struct {
	Month int `query:"month" validate:"required,min=1,max=12"`
	Year  int `query:"year" validate:"required,min=1970,max=9999"`
}

// CategoryBreakdownQuery selects the records and collapse limit of a breakdown
type CategoryBreakdownQuery struct {
	Month int    `query:"month" validate:"required,min=1,max=12"`
	Year  int    `query:"year" validate:"required,min=1970,max=9999"`
	Kind  string `query:"kind" validate:"required,record_kind"`
	Limit int    `query:"limit" validate:"min=0,max=50"`
}
