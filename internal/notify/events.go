package notify

import (
	"fmt"
	"time"
)

// CoinTransferEvent describes a professor granting coins to a student.
type CoinTransferEvent struct {
	ProfessorName  string
	ProfessorEmail string
	StudentName    string
	StudentEmail   string
	Amount         int
	Reason         string
}

// RedemptionEvent describes a student redeeming an advantage.
type RedemptionEvent struct {
	StudentName          string
	StudentEmail         string
	CompanyName          string
	CompanyEmail         string
	AdvantageDescription string
	CouponCode           string
	CoinCost             int
}

// EnqueueCoinTransfer queues up to three sends for one transfer: a copy for
// the program admin, a confirmation to the student and one to the professor.
// Templates left unconfigured are skipped.
func (d *Dispatcher) EnqueueCoinTransfer(ev CoinTransferEvent) {
	now := time.Now().Format("02/01/2006 15:04")
	reason := ev.Reason
	if reason == "" {
		reason = "—"
	}

	d.enqueue(d.cfg.TemplateTransferAdmin, map[string]any{
		"name":          ev.ProfessorName,
		"email":         firstNonEmpty(ev.ProfessorEmail, ev.StudentEmail),
		"student_name":  ev.StudentName,
		"student_email": ev.StudentEmail,
		"title":         fmt.Sprintf("Envio de moedas: %d para %s", ev.Amount, ev.StudentName),
		"message":       ev.Reason,
		"valor":         ev.Amount,
		"time":          now,
	})

	d.enqueue(d.cfg.TemplateTransferStudent, map[string]any{
		"name":          ev.StudentName,
		"email":         ev.StudentEmail,
		"student_email": ev.StudentEmail,
		"title":         "Você recebeu moedas!",
		"message":       fmt.Sprintf("Você recebeu %d moedas de %s. Motivo: %s", ev.Amount, ev.ProfessorName, reason),
		"valor":         ev.Amount,
		"time":          now,
	})

	if ev.ProfessorEmail != "" {
		d.enqueue(d.cfg.TemplateTransferProfessor, map[string]any{
			"name":            ev.ProfessorName,
			"email":           ev.ProfessorEmail,
			"professor_name":  ev.ProfessorName,
			"professor_email": ev.ProfessorEmail,
			"student_name":    ev.StudentName,
			"student_email":   ev.StudentEmail,
			"title":           "Confirmação de envio de moedas",
			"message":         fmt.Sprintf("Você enviou %d moedas para %s. Motivo: %s", ev.Amount, ev.StudentName, reason),
			"valor":           ev.Amount,
			"time":            now,
		})
	}
}

// EnqueueRedemption queues the coupon email to the student and the
// fulfillment notice to the company.
func (d *Dispatcher) EnqueueRedemption(ev RedemptionEvent) {
	now := time.Now().Format("02/01/2006 15:04")

	d.enqueue(d.cfg.TemplateRedeemStudent, map[string]any{
		"name":    ev.StudentName,
		"email":   ev.StudentEmail,
		"title":   "Cupom de resgate",
		"message": fmt.Sprintf("Resgate de %q por %d moedas. Apresente o cupom %s.", ev.AdvantageDescription, ev.CoinCost, ev.CouponCode),
		"cupom":   ev.CouponCode,
		"valor":   ev.CoinCost,
		"time":    now,
	})

	if ev.CompanyEmail != "" {
		d.enqueue(d.cfg.TemplateRedeemCompany, map[string]any{
			"name":          ev.CompanyName,
			"email":         ev.CompanyEmail,
			"student_name":  ev.StudentName,
			"student_email": ev.StudentEmail,
			"title":         "Vantagem resgatada",
			"message":       fmt.Sprintf("%s resgatou %q. Cupom: %s.", ev.StudentName, ev.AdvantageDescription, ev.CouponCode),
			"cupom":         ev.CouponCode,
			"valor":         ev.CoinCost,
			"time":          now,
		})
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
