package semantic

// DefaultCatalog returns the stock metrics catalog. It assumes an
// e-commerce-shaped schema (orders, customers, products) and is supplied
// as a default only; callers with a different domain inject their own
// catalog. Ratio metrics guard their divisors with NULLIF.
func DefaultCatalog() []Metric {
	return []Metric{
		{
			Name:        "total_revenue",
			Expression:  "SUM(ORDERS.TOTALAMOUNT)",
			Synonyms:    []string{"revenue", "total sales", "sales amount", "income"},
			Description: "Total revenue across all orders",
		},
		{
			Name:        "avg_order_value",
			Expression:  "AVG(ORDERS.TOTALAMOUNT)",
			Synonyms:    []string{"average order value", "aov", "mean order amount"},
			Description: "Average value of an order",
		},
		{
			Name:        "total_orders",
			Expression:  "COUNT(ORDERS.ID)",
			Synonyms:    []string{"order count", "number of orders", "orders placed"},
			Description: "Total number of orders",
		},
		{
			Name:        "unique_customers",
			Expression:  "COUNT(DISTINCT CUSTOMER.ID)",
			Synonyms:    []string{"customer count", "number of customers", "distinct customers"},
			Description: "Number of distinct customers",
		},
		{
			Name:        "unique_products",
			Expression:  "COUNT(DISTINCT PRODUCT.ID)",
			Synonyms:    []string{"product count", "number of products", "catalog size"},
			Description: "Number of distinct products",
		},
		{
			Name:        "avg_product_price",
			Expression:  "AVG(PRODUCT.PRICE)",
			Synonyms:    []string{"average price", "mean price", "typical price"},
			Description: "Average product price",
		},
		{
			Name:        "total_inventory_value",
			Expression:  "SUM(PRODUCT.PRICE * PRODUCT.STOCKQUANTITY)",
			Synonyms:    []string{"inventory value", "stock value", "inventory worth"},
			Description: "Total value of inventory on hand (price times stock)",
		},
		{
			Name:        "orders_per_customer",
			Expression:  "COUNT(ORDERS.ID) / NULLIF(COUNT(DISTINCT CUSTOMER.ID), 0)",
			Synonyms:    []string{"order frequency", "purchases per customer"},
			Description: "Average number of orders per customer",
		},
		{
			Name:        "revenue_per_customer",
			Expression:  "SUM(ORDERS.TOTALAMOUNT) / NULLIF(COUNT(DISTINCT CUSTOMER.ID), 0)",
			Synonyms:    []string{"customer value", "average customer spend", "arpu"},
			Description: "Average revenue per customer",
		},
	}
}
