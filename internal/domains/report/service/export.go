package service

import (
	"context"
	"fmt"
	"hoteladmin/internal/domains/report/model/dto"
	"hoteladmin/shared/constant"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary      = "Summary"
	SheetMonthly      = "Monthly"
	SheetNewCustomers = "New Customers"

	defaultSheet = "Sheet1"
)

// ExportXLSX writes the report summary as a workbook with one sheet for the
// dashboard totals, one for the monthly series and one for recent sign-ups.
func (s *serviceImpl) ExportXLSX(ctx context.Context, months int, w io.Writer) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportXLSX")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	summary, err := s.Summary(ctx, months)
	if err != nil {
		return err
	}

	file := excelize.NewFile()
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close workbook")
		}
	}()

	if err = writeWorkbook(file, summary); err != nil {
		log.Error().Err(err).Msg("failed to build report workbook")

		return fmt.Errorf("failed to build report workbook: %w", err)
	}

	if err = file.Write(w); err != nil {
		log.Error().Err(err).Msg("failed to write report workbook")

		return fmt.Errorf("failed to write report workbook: %w", err)
	}

	return nil
}

func writeWorkbook(file *excelize.File, summary dto.SummaryResponse) error {
	if err := file.SetSheetName(defaultSheet, SheetSummary); err != nil {
		return err //nolint:wrapcheck
	}

	summaryRows := [][]any{
		{"Metric", "Value"},
		{"Generated at", summary.GeneratedAt},
		{"Total bookings cost", summary.Dashboard.TotalBookingsCost},
		{"Total reservations", summary.Dashboard.TotalReservations},
		{"Total revenue", summary.Dashboard.TotalRevenue},
		{"Active customers", summary.Dashboard.ActiveCustomerCount},
	}

	if err := setRows(file, SheetSummary, summaryRows); err != nil {
		return err
	}

	if _, err := file.NewSheet(SheetMonthly); err != nil {
		return err //nolint:wrapcheck
	}

	monthlyRows := [][]any{{"Month", "New customers", "Total customers", "Revenue", "Bookings", "Occupancy %"}}
	for i, month := range summary.CustomerGrowth {
		monthlyRows = append(monthlyRows, []any{
			month.Month,
			month.Value,
			summary.TotalCustomers[i].Value,
			summary.Revenue[i].Value,
			summary.Bookings[i].Value,
			summary.Occupancy[i].Value,
		})
	}

	if err := setRows(file, SheetMonthly, monthlyRows); err != nil {
		return err
	}

	if _, err := file.NewSheet(SheetNewCustomers); err != nil {
		return err //nolint:wrapcheck
	}

	customerRows := [][]any{{"Customer ID", "Name", "Email", "Phone", "Sign-up date"}}
	for _, customer := range summary.NewCustomers {
		customerRows = append(customerRows, []any{
			customer.CustomerID,
			customer.FullName,
			customer.Email,
			customer.Phone,
			customer.SignupDate,
		})
	}

	return setRows(file, SheetNewCustomers, customerRows)
}

func setRows(file *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if err = file.SetSheetRow(sheet, cell, &row); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}
