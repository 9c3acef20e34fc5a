package constants

// Order status values. Status moves only by admin action, there is no
// transition machine: any known value may overwrite any other.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// OrderStatuses lists every accepted order status.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsOrderStatus reports whether value is a known order status.
func IsOrderStatus(value string) bool {
	for _, status := range OrderStatuses {
		if status == value {
			return true
		}
	}
	return false
}

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Verification code purposes.
const (
	VerifyPurposeRegister = "register"
	VerifyPurposeReset    = "reset"
)

// Queue and task names.
const (
	QueueDefault         = "default"
	TaskOrderPlacedEmail = "email:order_placed"
	TaskWelcomeEmail     = "email:welcome"
)

// Cache defaults.
const (
	RedisPrefixDefault = "fp"
)
