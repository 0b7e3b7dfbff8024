package store

// Factory defines the usercenter storage interface.
type Factory interface {
	Users() UserStore
}
