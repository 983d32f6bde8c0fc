package explorer

// SortOrder selects how a listing is ordered. Every order puts directories
// before files.
type SortOrder string

const (
	FolderFirstNameAsc      SortOrder = "folder-first-name-asc"
	FolderFirstNameDesc     SortOrder = "folder-first-name-desc"
	FolderFirstModifiedAsc  SortOrder = "folder-first-modified-asc"
	FolderFirstModifiedDesc SortOrder = "folder-first-modified-desc"
)

// DefaultSortOrder is used when nothing valid is configured.
const DefaultSortOrder = FolderFirstNameAsc

// sortCycle is the order ToggleSortOrder walks through.
var sortCycle = []SortOrder{
	FolderFirstNameAsc,
	FolderFirstNameDesc,
	FolderFirstModifiedAsc,
	FolderFirstModifiedDesc,
}

// SortOrders lists every order in toggle sequence.
func SortOrders() []SortOrder {
	out := make([]SortOrder, len(sortCycle))
	copy(out, sortCycle)
	return out
}

// Next returns the order that follows o in the toggle cycle.
func (o SortOrder) Next() SortOrder {
	for i, candidate := range sortCycle {
		if candidate == o {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return DefaultSortOrder
}

// Label is the short form shown in headers.
func (o SortOrder) Label() string {
	switch o {
	case FolderFirstNameDesc:
		return "name ↓"
	case FolderFirstModifiedAsc:
		return "modified ↑"
	case FolderFirstModifiedDesc:
		return "modified ↓"
	default:
		return "name ↑"
	}
}

func (o SortOrder) byName() bool {
	return o == FolderFirstNameAsc || o == FolderFirstNameDesc
}

func (o SortOrder) descending() bool {
	return o == FolderFirstNameDesc || o == FolderFirstModifiedDesc
}

// SortOrderToString gives the value stored in the defaultSortOrder setting.
func SortOrderToString(o SortOrder) string {
	switch o {
	case FolderFirstNameDesc:
		return "folderFirstNameDesc"
	case FolderFirstModifiedAsc:
		return "folderFirstModifiedAsc"
	case FolderFirstModifiedDesc:
		return "folderFirstModifiedDesc"
	default:
		return "folderFirstNameAsc"
	}
}

// StringToSortOrder parses a defaultSortOrder setting value. Unknown and empty
// values map to the default order.
func StringToSortOrder(value string) SortOrder {
	switch value {
	case "folderFirstNameDesc":
		return FolderFirstNameDesc
	case "folderFirstModifiedAsc":
		return FolderFirstModifiedAsc
	case "folderFirstModifiedDesc":
		return FolderFirstModifiedDesc
	default:
		return FolderFirstNameAsc
	}
}

// IsValidSortOrderString reports whether value is one of the four setting values.
func IsValidSortOrderString(value string) bool {
	for _, o := range sortCycle {
		if SortOrderToString(o) == value {
			return true
		}
	}
	return false
}
