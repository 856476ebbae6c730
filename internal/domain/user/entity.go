package user

// User is a seeded identity record. MerchantID is set iff the role is
// Merchant and is the only authorization linkage: a merchant-role user may
// only act on the merchant it references.
type User struct {
	ID         string
	Name       string
	Role       Role
	MerchantID *string
}

// OwnsMerchant reports whether this user is the merchant-role user for the
// given merchant id.
func (u User) OwnsMerchant(merchantID string) bool {
	return u.Role == RoleMerchant && u.MerchantID != nil && *u.MerchantID == merchantID
}
