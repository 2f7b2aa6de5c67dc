package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"hypnoraffle/models"

	"github.com/xuri/excelize/v2"
)

const (
	participantsSheet = "Participants"
	winnersSheet      = "Winners"
)

var participantHeaders = []interface{}{"Name", "Last name", "Display name", "Email", "Won", "Won at", "Registered at"}

// ExportParticipants builds an Excel workbook with the participants and the winners of a session
func ExportParticipants(ctx context.Context, sessionID string) (*bytes.Buffer, string, error) {
	participants, err := ListParticipants(ctx, sessionID, false)
	if err != nil {
		return nil, "", err
	}
	winners, err := ListWinners(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", participantsSheet); err != nil {
		return nil, "", fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(winnersSheet); err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeParticipantRows(f, participantsSheet, participants); err != nil {
		return nil, "", err
	}
	if err := writeParticipantRows(f, winnersSheet, winners); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("raffle-participants-%s.xlsx", time.Now().Format("20060102-150405"))
	return buf, filename, nil
}

func writeParticipantRows(f *excelize.File, sheet string, participants []models.Participant) error {
	if err := f.SetSheetRow(sheet, "A1", &participantHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, p := range participants {
		email := ""
		if p.Email != nil {
			email = *p.Email
		}
		wonAt := ""
		if p.WonAt != nil {
			wonAt = p.WonAt.Format(time.RFC3339)
		}

		row := []interface{}{p.Name, p.LastName, p.DisplayName, email, p.Won, wonAt, p.CreatedAt.Format(time.RFC3339)}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
