package model

import (
	"sort"
	"strings"
)

// DefaultPageSize 每页固定10条
const DefaultPageSize = 10

// Pagination 分页
type Pagination struct {
	// 查询第几页，从1开始
	// Example: 1
	PageNum int `json:"page_num"`
	// 查询每页显示条目
	// Example: 10
	PageSize int `json:"page_size"`
	// 总计条目
	// Example: 300
	Total int `json:"total"`
}

// Clamp pins PageNum into [1, last page], an empty set has one empty page
func (p *Pagination) Clamp() {
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	last := (p.Total + p.PageSize - 1) / p.PageSize
	if last < 1 {
		last = 1
	}
	if p.PageNum < 1 {
		p.PageNum = 1
	}
	if p.PageNum > last {
		p.PageNum = last
	}
}

// Bounds returns the [start, end) slice bounds of the current page
func (p *Pagination) Bounds() (int, int) {
	start := (p.PageNum - 1) * p.PageSize
	if start > p.Total {
		start = p.Total
	}
	end := start + p.PageSize
	if end > p.Total {
		end = p.Total
	}
	return start, end
}

// Sort 排序，只支持创建时间
type Sort struct {
	// 排序信息【格式:字段 排序方式】,desc-降序,asc-升序,例如:createTime desc
	SortField string
}

// Apply orders users in place by createTime, lexicographically as the table
// column does; stable so equal times keep insertion order.
func (s Sort) Apply(users []*User) {
	field := strings.TrimSpace(s.SortField)
	if field == "" {
		return
	}
	desc := strings.HasSuffix(strings.ToLower(field), " desc")
	sort.SliceStable(users, func(i, j int) bool {
		if desc {
			return users[i].CreateTime > users[j].CreateTime
		}
		return users[i].CreateTime < users[j].CreateTime
	})
}
