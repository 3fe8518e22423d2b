package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by staff
	OrderStatusShipped   OrderStatus = "shipped"   // Handed to the courier
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping

	// Payment statuses. Payment is a manual bank transfer: the customer
	// submits a transfer reference and staff verify it by hand.
	PaymentStatusPending  PaymentStatus = "pending"  // Awaiting transfer
	PaymentStatusInReview PaymentStatus = "in_review" // Proof submitted, staff checking
	PaymentStatusPaid     PaymentStatus = "paid"     // Transfer verified
	PaymentStatusFailed   PaymentStatus = "failed"   // Verification rejected
	PaymentStatusRefunded PaymentStatus = "refunded" // Money returned to customer
)

const PaymentMethodBankTransfer = "bank_transfer"

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderRef      string        `gorm:"uniqueIndex" json:"order_ref"`
	UserID        string        `gorm:"not null" json:"user_id"`
	User          User          `gorm:"foreignKey:UserID" json:"user"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	ShippingCost  float64       `json:"shipping_cost"`
	TotalAmount   float64       `json:"total_amount"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod string        `json:"payment_method"`
	TransferRef   string        `json:"transfer_ref"` // bank reference the customer submits
	CreatedAt     time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	OrderID         uint    `gorm:"index" json:"order_id"`
	ProductID       uint    `json:"product_id"`
	ProductName     string  `json:"product_name"`
	ProductBrand    string  `json:"product_brand"`
	ProductCategory string  `json:"product_category"`
	ProductImage    string  `json:"product_image"`
	ProductPrice    float64 `json:"product_price"`
	Weight          float64 `json:"weight"`
	Quantity        int     `json:"quantity"`
}
