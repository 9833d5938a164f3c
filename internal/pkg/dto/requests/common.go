package requests

type Pagination struct {
	Page     int
	PageSize int
}

func (p *Pagination) Skip() int64 {
	return int64((p.Page - 1) * p.PageSize)
}
