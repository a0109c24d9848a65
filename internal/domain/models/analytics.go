package models

// AdminStats is the headline dashboard aggregate, optionally windowed.
type AdminStats struct {
	TotalOrders       int64 `json:"totalOrders"`
	CompletedOrders   int64 `json:"completedOrders"`
	CancelledOrders   int64 `json:"cancelledOrders"`
	TotalRevenue      int64 `json:"totalRevenue"`
	AverageOrderValue int64 `json:"averageOrderValue"`
}

type DailyRevenue struct {
	Date    string `json:"date"`
	Orders  int64  `json:"orders"`
	Revenue int64  `json:"revenue"`
}

type ItemSales struct {
	ItemID   int64  `json:"itemId"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Revenue  int64  `json:"revenue"`
}

type Analytics struct {
	Daily    []DailyRevenue `json:"daily"`
	TopItems []ItemSales    `json:"topItems"`
}

type CustomerSpend struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Orders int64  `json:"orders"`
	Spend  int64  `json:"spend"`
}

type CustomerAnalytics struct {
	TotalCustomers int64           `json:"totalCustomers"`
	NewCustomers   int64           `json:"newCustomers"`
	TopCustomers   []CustomerSpend `json:"topCustomers"`
}

type CategoryItemCount struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	ItemCount    int64  `json:"itemCount"`
	ActiveItems  int64  `json:"activeItems"`
}

type MenuStatistics struct {
	TotalItems      int64               `json:"totalItems"`
	ActiveItems     int64               `json:"activeItems"`
	TotalCategories int64               `json:"totalCategories"`
	ByCategory      []CategoryItemCount `json:"byCategory"`
	MostOrdered     []ItemSales         `json:"mostOrdered"`
}
