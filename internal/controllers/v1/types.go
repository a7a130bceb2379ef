package v1

type URIYear struct {
	Year int `uri:"year" binding:"required" example:"2024"` // Year
}

type URIYearMonth struct {
	URIYear
	Month int `uri:"month" binding:"required,min=1,max=12" example:"3"` // Month of the year, 1 to 12
}

type URIID struct {
	ID string `uri:"id" binding:"required" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the resource
}
