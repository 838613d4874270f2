package xcmerge

//go:generate mockgen -source=$GOFILE -package mock_xcmerge -destination=test/mock/$GOFILE

// Observer receives notifications while a catalog is built. Calls are made
// synchronously from Build, in sorted message key order.
type Observer interface {
	// OnCollision is called when droppedKey and keptKey normalize to the same
	// catalog key. With CollisionOverwrite the entry of keptKey is the one written.
	OnCollision(catalogKey string, keptKey string, droppedKey string)
	// OnSourceMissing is called for a message key that some language defines
	// but the source language does not.
	OnSourceMissing(messageKey string)
}

type nopObserver struct{}

func (nopObserver) OnCollision(string, string, string) {}

func (nopObserver) OnSourceMissing(string) {}
