// Package graph provides the GraphQL schema and resolver set for the
// eye-disease record service.
package graph

import (
	"fmt"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"ocureg/internal/metrics"
	"ocureg/internal/record"
	"ocureg/pkg/errors"
)

// Resolver is the root resolver for GraphQL queries and mutations.
// It holds the record store handle and a logger.
type Resolver struct {
	store *record.Store
	log   *zap.Logger
}

// NewResolver creates a new resolver with the given dependencies.
func NewResolver(store *record.Store, log *zap.Logger) *Resolver {
	return &Resolver{
		store: store,
		log:   log,
	}
}

// recordResolver resolves the fields of a single Record
type recordResolver struct {
	rec record.Record
}

func (r *recordResolver) ID() graphql.ID { return graphql.ID(r.rec.ID) }
func (r *recordResolver) Name() string { return r.rec.Name }
func (r *recordResolver) Disease() string { return string(r.rec.Disease) }
func (r *recordResolver) DateAdded() string { return r.rec.DateAdded }

// deleteResultResolver resolves the outcome of a deleteRecord mutation
type deleteResultResolver struct {
	success bool
	message string
	removed *recordResolver
}

func (r *deleteResultResolver) Success() bool { return r.success }
func (r *deleteResultResolver) Message() string { return r.message }
func (r *deleteResultResolver) Removed() *recordResolver { return r.removed }

// Records returns the full current collection
func (r *Resolver) Records() []*recordResolver {
	defer r.observe("records", time.Now(), nil)

	recs := r.store.List()
	out := make([]*recordResolver, 0, len(recs))
	for _, rec := range recs {
		out = append(out, &recordResolver{rec: rec})
	}
	return out
}

// Record looks up a single record by id. Absence is a null result, not
// an error.
func (r *Resolver) Record(args struct{ ID graphql.ID }) *recordResolver {
	defer r.observe("record", time.Now(), nil)

	rec, ok := r.store.FindByID(string(args.ID))
	if !ok {
		return nil
	}
	return &recordResolver{rec: rec}
}

// AddRecord validates the input, assigns a fresh id and appends the
// record to the store
func (r *Resolver) AddRecord(args struct {
	Name      string
	Disease   string
	DateAdded *string
}) (resolver *recordResolver, err error) {
	defer func(start time.Time) { r.observe("addRecord", start, err) }(time.Now())

	name, err := record.ValidateName(args.Name)
	if err != nil {
		return nil, err
	}
	disease, err := record.ValidateDisease(args.Disease)
	if err != nil {
		return nil, err
	}

	// An unparseable dateAdded falls back to "now" instead of failing,
	// unlike updateRecord. Deliberately kept this way.
	date := record.DefaultDate()
	if args.DateAdded != nil {
		if parsed, dateErr := record.ValidateDate(*args.DateAdded); dateErr == nil {
			date = parsed
		} else {
			r.log.Debug("addRecord ignoring unparseable dateAdded",
				zap.String("dateAdded", *args.DateAdded))
		}
	}

	rec := r.store.Insert(record.Record{
		ID:        r.store.NextID(),
		Name:      name,
		Disease:   disease,
		DateAdded: date,
	})
	metrics.SetRecordCount(r.store.Len())

	r.log.Info("record added",
		zap.String("id", rec.ID),
		zap.String("disease", string(rec.Disease)))
	return &recordResolver{rec: rec}, nil
}

// UpdateRecord validates every supplied field, then applies the change
// set in place. Unsupplied fields are untouched.
func (r *Resolver) UpdateRecord(args struct {
	ID        graphql.ID
	Name      *string
	Disease   *string
	DateAdded *string
}) (resolver *recordResolver, err error) {
	defer func(start time.Time) { r.observe("updateRecord", start, err) }(time.Now())

	id := string(args.ID)
	var upd record.Update

	if args.Name != nil {
		name, err := record.ValidateName(*args.Name)
		if err != nil {
			return nil, err
		}
		upd.Name = &name
	}
	if args.Disease != nil {
		disease, err := record.ValidateDisease(*args.Disease)
		if err != nil {
			return nil, err
		}
		upd.Disease = &disease
	}
	if args.DateAdded != nil {
		date, err := record.ValidateDate(*args.DateAdded)
		if err != nil {
			return nil, err
		}
		upd.DateAdded = &date
	}

	rec, ok := r.store.UpdateByID(id, upd)
	if !ok {
		return nil, errors.NewNotFound("record with id %s not found", id)
	}

	r.log.Info("record updated", zap.String("id", rec.ID))
	return &recordResolver{rec: rec}, nil
}

// DeleteRecord removes a record by id. A missing id is reported through
// the result's success flag, never as an operation-level error.
func (r *Resolver) DeleteRecord(args struct{ ID graphql.ID }) *deleteResultResolver {
	defer r.observe("deleteRecord", time.Now(), nil)

	id := string(args.ID)
	rec, ok := r.store.RemoveByID(id)
	if !ok {
		return &deleteResultResolver{
			success: false,
			message: fmt.Sprintf("Record with id %s not found.", id),
		}
	}
	metrics.SetRecordCount(r.store.Len())

	r.log.Info("record deleted", zap.String("id", id))
	return &deleteResultResolver{
		success: true,
		message: fmt.Sprintf("Record with id %s deleted.", id),
		removed: &recordResolver{rec: rec},
	}
}

func (r *Resolver) observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.IncOperation(operation, status)
	metrics.ObserveOperationDuration(operation, time.Since(start).Seconds())
}
