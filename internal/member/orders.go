package member

// OrderStatus is the order lifecycle stage.
type OrderStatus string

const (
	StatusPendingPay     OrderStatus = "pending_pay"
	StatusPendingShip    OrderStatus = "pending_ship"
	StatusPendingReceive OrderStatus = "pending_receive"
	StatusPendingReview  OrderStatus = "pending_review"
	StatusCompleted      OrderStatus = "completed"
	StatusAfterSales     OrderStatus = "after_sales"
)

// Label is the Chinese display text for a status.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPendingPay:
		return "待付款"
	case StatusPendingShip:
		return "待发货"
	case StatusPendingReceive:
		return "待收货"
	case StatusPendingReview:
		return "待评价"
	case StatusCompleted:
		return "已完成"
	case StatusAfterSales:
		return "售后中"
	}
	return string(s)
}

// OrderItem is one purchased line as recorded at checkout time. Price is in
// whole yuan.
type OrderItem struct {
	ProductID string
	Name      string
	Brand     string
	Price     int64
	Image     string
	Quantity  int
	Origin    string
}

// Order is a historical purchase.
type Order struct {
	ID     string
	Date   string
	Status OrderStatus
	Total  int64
	Items  []OrderItem
}

// Orders returns the account's order history, newest first.
func Orders() []Order {
	return []Order{
		{
			ID: "202403150001", Date: "2024-03-15", Status: StatusPendingReceive, Total: 18800,
			Items: []OrderItem{{ProductID: "1", Name: "极品达拉干沉香原材", Brand: "承香秘藏", Price: 18800, Image: productImage, Quantity: 1, Origin: "印尼"}},
		},
		{
			ID: "202402100055", Date: "2024-02-10", Status: StatusCompleted, Total: 3500,
			Items: []OrderItem{{ProductID: "4", Name: "惠安老料沉香油", Brand: "精油系列", Price: 3500, Image: productImage, Quantity: 1, Origin: "越南"}},
		},
		{
			ID: "202401050088", Date: "2024-01-05", Status: StatusAfterSales, Total: 1280,
			Items: []OrderItem{{ProductID: "3", Name: "古法醇化芽庄线香", Brand: "雅室系列", Price: 1280, Image: productImage, Quantity: 1, Origin: "越南"}},
		},
	}
}

// OrderByID finds one order in the history.
func OrderByID(id string) (Order, bool) {
	for _, o := range Orders() {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

const productImage = "https://m.media-amazon.com/images/I/51a0UK8LfBL._AC_SX679_.jpg"

// StepState marks where an after-sales step sits in the flow.
type StepState string

const (
	StepDone    StepState = "completed"
	StepCurrent StepState = "current"
	StepPending StepState = "pending"
)

// AfterSalesStep is one stage of the return/refund timeline.
type AfterSalesStep struct {
	Title string
	Date  string
	Desc  string
	State StepState
}

// AfterSalesSteps returns the return timeline for an order. The flow pivots
// on whether the buyer has filed the return logistics number yet.
func AfterSalesSteps(logisticsFiled bool) []AfterSalesStep {
	buyerDesc := "请将商品寄回商家指定地址，并填写物流单号"
	buyerState := StepCurrent
	if logisticsFiled {
		buyerDesc = "您已填写退货物流，等待商家收货"
		buyerState = StepDone
	}
	return []AfterSalesStep{
		{Title: "提交申请", Date: "2024-01-05 10:20", Desc: "您的售后申请已提交，等待商家审核", State: StepDone},
		{Title: "商家审核", Date: "2024-01-05 14:30", Desc: "商家已同意您的售后申请", State: StepDone},
		{Title: "买家退货", Desc: buyerDesc, State: buyerState},
		{Title: "商家收货", Desc: "商家确认收货并验货", State: StepPending},
		{Title: "退款/换货", Desc: "退款将原路返回您的支付账户", State: StepPending},
		{Title: "完成", Desc: "服务已完成", State: StepPending},
	}
}
