package payroll

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/corepay/payroll-backend-go/internal/domain/department"
	"github.com/corepay/payroll-backend-go/internal/domain/employee"
	"github.com/corepay/payroll-backend-go/internal/domain/payroll"
	"github.com/corepay/payroll-backend-go/internal/domain/timeentry"
	"github.com/corepay/payroll-backend-go/internal/pkg/export"
	"github.com/corepay/payroll-backend-go/internal/pkg/validator"
)

const (
	defaultPaymentMethod = "Bank Transfer"
	defaultNotes         = "Processed by Payroll Management System"
	paySlipStatusIssued  = "Generated"
	paymentTermDays      = 7
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	paySlipRepo    payroll.PaySlipRepository
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	timeEntryRepo  timeentry.TimeEntryRepository
	exporter       *export.PaySlipExporter
	now            func() time.Time
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	paySlipRepo payroll.PaySlipRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	timeEntryRepo timeentry.TimeEntryRepository,
	exporter *export.PaySlipExporter,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		paySlipRepo:    paySlipRepo,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		timeEntryRepo:  timeEntryRepo,
		exporter:       exporter,
		now:            time.Now,
	}
}

// Process implements payroll.PayrollService.
func (s *PayrollServiceImpl) Process(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.PayPeriodStart)
	end, _ := time.Parse("2006-01-02", req.PayPeriodEnd)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	// Early duplicate check for a clean error path; the unique constraint on
	// (employee, period) in the repository still backstops concurrent callers.
	_, err = s.payrollRepo.GetByEmployeeAndPeriod(ctx, emp.ID, start, end)
	if err == nil {
		return payroll.PayrollResponse{}, payroll.ErrPayrollAlreadyProcessed
	}
	if !errors.Is(err, payroll.ErrPayrollNotFound) {
		return payroll.PayrollResponse{}, err
	}

	worked, err := s.timeEntryRepo.SumApprovedHours(ctx, emp.ID, start, end)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	gross := GrossPay(emp, worked)
	deductions, net := CalculateDeductions(gross)

	notes := defaultNotes
	record := payroll.Payroll{
		EmployeeID:     emp.ID,
		DepartmentID:   emp.DepartmentID,
		PayPeriodStart: start,
		PayPeriodEnd:   end,
		GrossPay:       gross,
		Deductions:     deductions,
		NetPay:         net,
		RegularHours:   worked.RegularHours.Round(2),
		OvertimeHours:  worked.OvertimeHours.Round(2),
		ProcessingDate: s.now(),
		PaymentMethod:  defaultPaymentMethod,
		Notes:          &notes,
	}

	created, err := s.payrollRepo.Create(ctx, record)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toPayrollResponse(created), nil
}

// GetByID implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetByID(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return toPayrollResponse(record), nil
}

// ListByEmployee implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toPayrollResponse(record))
	}
	return responses, nil
}

// ListByDepartment implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByDepartment(ctx context.Context, departmentID string) ([]payroll.PayrollResponse, error) {
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toPayrollResponse(record))
	}
	return responses, nil
}

// SummarizeDepartment implements payroll.PayrollService.
func (s *PayrollServiceImpl) SummarizeDepartment(ctx context.Context, departmentID, start, end string) (payroll.DepartmentSummaryResponse, error) {
	startDate, endDate, err := parseDateRange(start, end)
	if err != nil {
		return payroll.DepartmentSummaryResponse{}, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return payroll.DepartmentSummaryResponse{}, err
	}

	summary, err := s.payrollRepo.SummarizeDepartment(ctx, departmentID, startDate, endDate)
	if err != nil {
		return payroll.DepartmentSummaryResponse{}, err
	}

	return payroll.DepartmentSummaryResponse{
		DepartmentID:       summary.DepartmentID,
		DepartmentName:     summary.DepartmentName,
		CostCenter:         summary.CostCenter,
		TotalGrossPay:      summary.TotalGrossPay,
		TotalNetPay:        summary.TotalNetPay,
		TotalRegularHours:  summary.TotalRegularHours,
		TotalOvertimeHours: summary.TotalOvertimeHours,
	}, nil
}

// IssuePaySlip implements payroll.PayrollService.
func (s *PayrollServiceImpl) IssuePaySlip(ctx context.Context, req payroll.IssuePaySlipRequest) (payroll.PaySlipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PaySlipResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, req.PayrollID)
	if err != nil {
		return payroll.PaySlipResponse{}, err
	}

	existing, err := s.paySlipRepo.GetByPayrollID(ctx, record.ID)
	if err == nil {
		return toPaySlipResponse(existing), nil
	}
	if !errors.Is(err, payroll.ErrPaySlipNotFound) {
		return payroll.PaySlipResponse{}, err
	}

	issueDate := s.now()
	if req.IssueDate != nil {
		issueDate, _ = time.Parse("2006-01-02", *req.IssueDate)
	}

	slip := payroll.PaySlip{
		PayrollID:      record.ID,
		PayslipNumber:  paySlipNumber(record.EmployeeID, record.PayPeriodStart),
		IssueDate:      issueDate,
		PaymentDate:    issueDate.AddDate(0, 0, paymentTermDays),
		BankAccountRef: maskedBankRef(record.EmployeeID),
		Status:         paySlipStatusIssued,
	}

	created, err := s.paySlipRepo.Create(ctx, slip)
	if err != nil {
		// A concurrent issuer may win the unique constraint on payroll_id;
		// its slip is the answer.
		if errors.Is(err, payroll.ErrPaySlipAlreadyIssued) {
			winner, readErr := s.paySlipRepo.GetByPayrollID(ctx, record.ID)
			if readErr != nil {
				return payroll.PaySlipResponse{}, readErr
			}
			return toPaySlipResponse(winner), nil
		}
		return payroll.PaySlipResponse{}, err
	}

	return toPaySlipResponse(created), nil
}

// GetPaySlip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPaySlip(ctx context.Context, id string) (payroll.PaySlipResponse, error) {
	slip, err := s.paySlipRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PaySlipResponse{}, err
	}
	return toPaySlipResponse(slip), nil
}

// GetPaySlipByPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPaySlipByPayroll(ctx context.Context, payrollID string) (payroll.PaySlipResponse, error) {
	slip, err := s.paySlipRepo.GetByPayrollID(ctx, payrollID)
	if err != nil {
		return payroll.PaySlipResponse{}, err
	}
	return toPaySlipResponse(slip), nil
}

// ListPaySlipsByEmployee implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPaySlipsByEmployee(ctx context.Context, employeeID string) ([]payroll.PaySlipResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	slips, err := s.paySlipRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PaySlipResponse, 0, len(slips))
	for _, slip := range slips {
		responses = append(responses, toPaySlipResponse(slip))
	}
	return responses, nil
}

// GetLatestPaySlipByEmployee implements payroll.PayrollService. The repository
// lists slips newest first, so the latest is the head of the list.
func (s *PayrollServiceImpl) GetLatestPaySlipByEmployee(ctx context.Context, employeeID string) (payroll.PaySlipResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return payroll.PaySlipResponse{}, err
	}

	slips, err := s.paySlipRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return payroll.PaySlipResponse{}, err
	}
	if len(slips) == 0 {
		return payroll.PaySlipResponse{}, payroll.ErrPaySlipNotFound
	}

	return toPaySlipResponse(slips[0]), nil
}

// ListPaySlips implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPaySlips(ctx context.Context) ([]payroll.PaySlipResponse, error) {
	slips, err := s.paySlipRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PaySlipResponse, 0, len(slips))
	for _, slip := range slips {
		responses = append(responses, toPaySlipResponse(slip))
	}
	return responses, nil
}

// ExportPaySlipPDF implements payroll.PayrollService. The second return value
// is a filename suitable for a Content-Disposition header.
func (s *PayrollServiceImpl) ExportPaySlipPDF(ctx context.Context, id string) ([]byte, string, error) {
	slip, err := s.paySlipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	record, err := s.payrollRepo.GetByID(ctx, slip.PayrollID)
	if err != nil {
		return nil, "", err
	}

	emp, err := s.employeeRepo.GetByID(ctx, record.EmployeeID)
	if err != nil {
		return nil, "", err
	}

	departmentName := ""
	if record.DepartmentID != nil {
		dept, err := s.departmentRepo.GetByID(ctx, *record.DepartmentID)
		if err == nil {
			departmentName = dept.Name
		} else if !errors.Is(err, department.ErrDepartmentNotFound) {
			return nil, "", err
		}
	}

	doc := export.PaySlipDocument{
		PayslipNumber:  slip.PayslipNumber,
		EmployeeName:   emp.FirstName + " " + emp.LastName,
		DepartmentName: departmentName,
		PayPeriodStart: record.PayPeriodStart,
		PayPeriodEnd:   record.PayPeriodEnd,
		IssueDate:      slip.IssueDate,
		PaymentDate:    slip.PaymentDate,
		BankAccountRef: slip.BankAccountRef,

		GrossPay:               record.GrossPay,
		IncomeTax:              record.Deductions.IncomeTax,
		ProvidentFund:          record.Deductions.ProvidentFund,
		SocialContribution:     record.Deductions.SocialContribution,
		ProfessionalTax:        record.Deductions.ProfessionalTax,
		HealthInsurance:        record.Deductions.HealthInsurance,
		RetirementContribution: record.Deductions.RetirementContribution,
		OtherDeductions:        record.Deductions.OtherDeductions,
		NetPay:                 record.NetPay,

		RegularHours:  record.RegularHours,
		OvertimeHours: record.OvertimeHours,
		Status:        slip.Status,
	}

	pdf, err := s.exporter.RenderPDF(doc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render payslip pdf: %w", err)
	}

	return pdf, slip.PayslipNumber + ".pdf", nil
}

// paySlipNumber builds PS-{employeeID}-{yyyyMM}-{random 4 digits}. The random
// suffix alone does not guarantee uniqueness; the unique index on
// payslip_number turns a collision into a retryable conflict.
func paySlipNumber(employeeID string, periodStart time.Time) string {
	return fmt.Sprintf("PS-%s-%s-%04d", employeeID, periodStart.Format("200601"), rand.Intn(10000))
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	var errs validator.ValidationErrors

	startDate, okStart := validator.IsValidDate(start)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "must be YYYY-MM-DD"})
	}
	endDate, okEnd := validator.IsValidDate(end)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	return startDate, endDate, nil
}

func maskedBankRef(employeeID string) string {
	tail := employeeID
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return "XXXX-XXXX-" + tail
}

func toPayrollResponse(p payroll.Payroll) payroll.PayrollResponse {
	return payroll.PayrollResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		DepartmentID:   p.DepartmentID,
		PayPeriodStart: p.PayPeriodStart.Format("2006-01-02"),
		PayPeriodEnd:   p.PayPeriodEnd.Format("2006-01-02"),
		GrossPay:       p.GrossPay,

		IncomeTax:              p.Deductions.IncomeTax,
		ProvidentFund:          p.Deductions.ProvidentFund,
		SocialContribution:     p.Deductions.SocialContribution,
		ProfessionalTax:        p.Deductions.ProfessionalTax,
		HealthInsurance:        p.Deductions.HealthInsurance,
		RetirementContribution: p.Deductions.RetirementContribution,
		OtherDeductions:        p.Deductions.OtherDeductions,

		NetPay:         p.NetPay,
		RegularHours:   p.RegularHours,
		OvertimeHours:  p.OvertimeHours,
		ProcessingDate: p.ProcessingDate.Format("2006-01-02"),
		PaymentMethod:  p.PaymentMethod,
		Notes:          p.Notes,
	}
}

func toPaySlipResponse(s payroll.PaySlip) payroll.PaySlipResponse {
	return payroll.PaySlipResponse{
		ID:             s.ID,
		PayrollID:      s.PayrollID,
		PayslipNumber:  s.PayslipNumber,
		IssueDate:      s.IssueDate.Format("2006-01-02"),
		PaymentDate:    s.PaymentDate.Format("2006-01-02"),
		BankAccountRef: s.BankAccountRef,
		Status:         s.Status,
	}
}
