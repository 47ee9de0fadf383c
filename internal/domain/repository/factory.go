package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Products() ProductRepository
	Users() UserRepository
	Coupons() CouponRepository
	Orders() OrderRepository
}
