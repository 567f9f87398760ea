package selector

import (
	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/store"
)

// TableQuery is the view state of the user management table.
type TableQuery struct {
	Search   string
	Page     int
	PageSize int
	// Region is the previously selected region; Toggle is the region the
	// caller clicked, if any.
	Region string
	Toggle string
}

// UserTable is the composed view rendered by the user management screen.
type UserTable struct {
	Page         Page[domain.User]   `json:"page"`
	Search       string              `json:"search"`
	Region       string              `json:"region"`
	TotalUsers   int                 `json:"totalUsers"`
	ActiveUsers  int                 `json:"activeUsers"`
	DeletedUsers int                 `json:"deletedUsers"`
	Request      domain.RequestState `json:"request"`
}

// BuildUserTable filters and paginates the user slice for q.
func BuildUserTable(state store.UsersState, q TableQuery) UserTable {
	region := q.Region
	if q.Toggle != "" {
		region = ToggleRegion(q.Region, q.Toggle)
	}

	filtered := FilterByText(state.Users, q.Search)
	return UserTable{
		Page:         Paginate(filtered, q.Page, q.PageSize),
		Search:       q.Search,
		Region:       region,
		TotalUsers:   state.TotalUsers,
		ActiveUsers:  state.ActiveUsers,
		DeletedUsers: state.DeletedUsers,
		Request:      state.Request,
	}
}
