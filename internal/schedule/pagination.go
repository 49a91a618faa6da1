package schedule

// Page — страница списка вместе с метаданными для листания.
type Page[T any] struct {
	Items    []T  `json:"items"`
	Page     int  `json:"page"`      // нумерация с 1
	PageSize int  `json:"page_size"` // элементов на странице
	HasNext  bool `json:"has_next"`
	HasPrev  bool `json:"has_prev"`
	Total    int  `json:"total"` // всего элементов до нарезки
}

// Paginate нарезает items и отдаёт запрошенную страницу.
// Нулевые или отрицательные page/pageSize заменяются на первую страницу
// и размер по умолчанию; страница за пределами списка выходит пустой.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	const defaultPageSize = 20

	total := len(items)

	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:    items[start:end],
		Page:     page,
		PageSize: pageSize,
		HasNext:  end < total,
		HasPrev:  page > 1,
		Total:    total,
	}
}
