// Package paging implements 1-based page navigation shared by list screens.
package paging

// DefaultWindow максимальное число номеров страниц в навигации
const DefaultWindow = 10

// Pager текущая страница и общее число страниц.
// Total == 0 означает, что число страниц еще неизвестно.
type Pager struct {
	Current int
	Total   int
}

// New создает пагинатор на первой странице
func New() *Pager {
	return &Pager{Current: 1}
}

// Clamp приводит номер страницы к допустимому диапазону.
// Пока Total неизвестен, ограничивается только нижняя граница.
func (p *Pager) Clamp(page int) int {
	page = max(1, page)
	if p.Total > 0 {
		page = min(p.Total, page)
	}
	return page
}

// Goto переходит на страницу с ограничением диапазона и возвращает ее номер
func (p *Pager) Goto(page int) int {
	p.Current = p.Clamp(page)
	return p.Current
}

// Next номер следующей страницы, не больше Total
func (p *Pager) Next() int {
	return p.Clamp(p.Current + 1)
}

// Prev номер предыдущей страницы, не меньше 1
func (p *Pager) Prev() int {
	return p.Clamp(p.Current - 1)
}

// HasNext сообщает, есть ли следующая страница
func (p *Pager) HasNext() bool {
	return p.Total > 0 && p.Current < p.Total
}

// HasPrev сообщает, есть ли предыдущая страница
func (p *Pager) HasPrev() bool {
	return p.Current > 1
}

// SetTotal обновляет число страниц по ответу backend.
// Нулевое или отрицательное значение трактуется как одна страница.
func (p *Pager) SetTotal(total int) {
	p.Total = max(1, total)
	p.Current = p.Clamp(p.Current)
}

// Pages номера страниц для навигации: min(window, Total), начиная с 1
func (p *Pager) Pages(window int) []int {
	if window <= 0 {
		window = DefaultWindow
	}
	n := min(window, max(1, p.Total))
	pages := make([]int, n)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}
