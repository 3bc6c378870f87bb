package client

import (
	"fmt"
	"time"

	"github.com/ion-oset/electorate-vanadium-core/lib/model"
)

// RegistrationsDataset is the dataset name the registration workflow uses
// by default. The server must be started with a dataset of this name.
const RegistrationsDataset = "registrations"

// RegistrationClient layers the voter registration workflow over a plain
// data client: documents are model.Registration records and keys are the
// tracking identifiers handed to registrants.
//
// Thread-safety: a RegistrationClient is safe for concurrent use.
type RegistrationClient struct {
	client  *Client
	dataset string
}

// NewRegistrationClient wraps an existing data client. An empty dataset
// selects RegistrationsDataset.
func NewRegistrationClient(client *Client, dataset string) *RegistrationClient {
	if dataset == "" {
		dataset = RegistrationsDataset
	}
	return &RegistrationClient{client: client, dataset: dataset}
}

// Submit validates and stores a new registration and returns the generated
// tracking identifier. The record is stamped as received before it is
// stored, and the stamps are visible on r afterwards.
func (rc *RegistrationClient) Submit(r *model.Registration) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	r.Status = model.StatusReceived
	r.SubmittedAt = time.Now().UTC()

	data, err := r.Encode()
	if err != nil {
		return "", err
	}

	trackingID, ok, err := rc.client.Insert(rc.dataset, "", data)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("registration: generated tracking id already in use")
	}
	return trackingID, nil
}

// Status returns the registration stored under a tracking identifier. The
// boolean reports whether the identifier is known; a known identifier with
// an unreadable document returns true together with the decode error.
func (rc *RegistrationClient) Status(trackingID string) (*model.Registration, bool, error) {
	data, ok, err := rc.client.Lookup(rc.dataset, trackingID)
	if err != nil || !ok {
		return nil, false, err
	}

	r, err := model.DecodeRegistration(data)
	if err != nil {
		return nil, true, err
	}
	return r, true, nil
}

// Update replaces the registration stored under a tracking identifier and
// returns the stored record. It never creates entries: false reports an
// unknown identifier.
func (rc *RegistrationClient) Update(trackingID string, r *model.Registration) (*model.Registration, bool, error) {
	if err := r.Validate(); err != nil {
		return nil, false, err
	}

	r.UpdatedAt = time.Now().UTC()

	data, err := r.Encode()
	if err != nil {
		return nil, false, err
	}

	stored, ok, err := rc.client.Update(rc.dataset, trackingID, data)
	if err != nil || !ok {
		return nil, false, err
	}

	updated, err := model.DecodeRegistration(stored)
	if err != nil {
		return nil, true, err
	}
	return updated, true, nil
}

// Cancel withdraws a registration and returns the removed record. The
// boolean reports whether the identifier was known.
func (rc *RegistrationClient) Cancel(trackingID string) (*model.Registration, bool, error) {
	data, ok, err := rc.client.Remove(rc.dataset, trackingID)
	if err != nil || !ok {
		return nil, false, err
	}

	r, err := model.DecodeRegistration(data)
	if err != nil {
		return nil, true, err
	}
	return r, true, nil
}

// List returns every stored registration. Order is unspecified.
func (rc *RegistrationClient) List() ([]*model.Registration, error) {
	values, err := rc.client.Values(rc.dataset)
	if err != nil {
		return nil, err
	}

	registrations := make([]*model.Registration, 0, len(values))
	for _, data := range values {
		r, err := model.DecodeRegistration(data)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, r)
	}
	return registrations, nil
}
