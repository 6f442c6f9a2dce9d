package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"attorneycrm/internal/domain"
)

func TestContactRepository_ListAll(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	columns := []string{"id", "first_name", "last_name", "email", "company_id", "event_ids", "attorney_ids"}
	mock.ExpectQuery(`SELECT c\.id, c\.first_name`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("c1", "Ann", "Park", "ann@example.com", "co1", "{e1,e2}", "{a1}").
			AddRow("c2", "Bob", "Lee", "bob@example.com", nil, "{}", "{}"))

	repo := NewContactRepository(db)
	contacts, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	require.Equal(t, "co1", contacts[0].CompanyID)
	require.Equal(t, []string{"e1", "e2"}, contacts[0].EventIDs)
	require.Equal(t, []string{"a1"}, contacts[0].AttorneyIDs)

	require.Empty(t, contacts[1].CompanyID)
	require.Empty(t, contacts[1].EventIDs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		contact *domain.Contact
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success with links",
			contact: &domain.Contact{
				FirstName:   "Ann",
				LastName:    "Park",
				Email:       "ann@example.com",
				CompanyID:   "co1",
				EventIDs:    []string{"e1"},
				AttorneyIDs: []string{"a1"},
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO contacts`).
					WithArgs("Ann", "Park", "ann@example.com", "co1").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("c1"))
				mock.ExpectExec(`INSERT INTO contact_attorneys`).
					WithArgs("c1", "a1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO contact_events`).
					WithArgs("c1", "e1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantID: "c1",
		},
		{
			name: "insert error rolls back",
			contact: &domain.Contact{
				FirstName: "Bob",
				LastName:  "Lee",
				Email:     "bob@example.com",
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO contacts`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewContactRepository(db)
			err = repo.Create(ctx, tt.contact)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.contact.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
