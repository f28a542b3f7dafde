package dto

type OrderLine struct {
	ProductID    string `db:"product_id" json:"product_id"`
	ProductName  string `db:"product_name" json:"product_name"`
	CategoryName string `db:"category_name" json:"category_name"`
}

type DailySales struct {
	Date  string  `json:"date"` // weekday name
	Total float64 `json:"total"`
}

type CategorySales struct {
	Category string `json:"category"`
	Sales    int    `json:"sales"`
}

type RecentOrder struct {
	ID     string  `json:"id"`
	UserID string  `json:"user_id"`
	Total  float64 `json:"total"`
	Status string  `json:"status"`
	Date   string  `json:"date"` // YYYY-MM-DD
}

type TopProduct struct {
	Name string `json:"name"`
	Sold int    `json:"sold"`
}

type DashboardData struct {
	TotalRevenue      float64         `json:"total_revenue"`
	TotalSales        int             `json:"total_sales"`
	NewCustomers      int             `json:"new_customers"`
	AvgOrderValue     float64         `json:"avg_order_value"`
	SalesData         []DailySales    `json:"sales_data"`
	CategorySalesData []CategorySales `json:"category_sales_data"`
	RecentOrders      []RecentOrder   `json:"recent_orders"`
	TopProducts       []TopProduct    `json:"top_products"`
}

type RecordOrderInput struct {
	OrderID string
	StoreID string
	UserID  string
	Total   float64
	Status  string
	Items   []RecordOrderItem
}

type RecordOrderItem struct {
	ProductID string
	Quantity  int
}
