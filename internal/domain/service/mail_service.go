package service

import "context"

// MailService defines the interface for transactional email delivery.
// Sending failures are logged by implementations and never surface to the
// request that triggered them.
type MailService interface {
	// SendWelcome greets a newly registered user.
	SendWelcome(ctx context.Context, to, name string) error

	// SendLoginNotification notifies a user about a fresh sign-in.
	SendLoginNotification(ctx context.Context, to, name string) error

	// SendDonationConfirmation confirms a newly posted item to its donor.
	SendDonationConfirmation(ctx context.Context, to, name, itemName string) error

	// SendReservationRequest tells a donor someone requested their item.
	SendReservationRequest(ctx context.Context, to, donorName, requesterName, itemName string) error

	// SendReservationConfirmation tells a requester their request was approved.
	SendReservationConfirmation(ctx context.Context, to, requesterName, itemName, trackingID string) error

	// SendTrackingUpdate tells both parties the pickup status moved.
	SendTrackingUpdate(ctx context.Context, to, name, itemName, trackingID, status string) error

	// SendAccountDeletion confirms account removal.
	SendAccountDeletion(ctx context.Context, to, name string) error
}
