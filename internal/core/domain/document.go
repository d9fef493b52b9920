package domain

// DocumentType identifies which printable report/receipt shape to produce.
// The set is closed; aliases are canonicalized at the template registry
// boundary.
type DocumentType string

const (
	DocStudentReport   DocumentType = "student_report"
	DocStudentList     DocumentType = "student_list"
	DocFinancialReport DocumentType = "financial_report"
	DocPaymentReceipt  DocumentType = "payment_receipt"
	DocSalarySlip      DocumentType = "salary_slip"
	DocStaffReport     DocumentType = "staff_report"
	DocSchoolReport    DocumentType = "school_report"
	DocCustom          DocumentType = "custom"
)

// KnownDocumentTypes lists every canonical document type, in display order.
var KnownDocumentTypes = []DocumentType{
	DocStudentReport,
	DocStudentList,
	DocFinancialReport,
	DocPaymentReceipt,
	DocSalarySlip,
	DocStaffReport,
	DocSchoolReport,
	DocCustom,
}

// IsKnownDocumentType reports whether t is one of the canonical types.
func IsKnownDocumentType(t DocumentType) bool {
	switch t {
	case DocStudentReport, DocStudentList, DocFinancialReport, DocPaymentReceipt,
		DocSalarySlip, DocStaffReport, DocSchoolReport, DocCustom:
		return true
	default:
		return false
	}
}

// TemplateHandle points at the resolved template resource for a canonical
// document type.
type TemplateHandle struct {
	Type DocumentType `json:"type"`
	Name string       `json:"name"`
	Path string       `json:"path"`
}

// DisplayTitle returns the page title injected for documents of this type.
func (t DocumentType) DisplayTitle() string {
	switch t {
	case DocStudentReport:
		return "تقرير الطالب"
	case DocStudentList:
		return "قائمة الطلاب"
	case DocFinancialReport:
		return "التقرير المالي"
	case DocPaymentReceipt:
		return "إيصال دفع"
	case DocSalarySlip:
		return "قسيمة راتب"
	case DocStaffReport:
		return "تقرير الموظفين"
	case DocSchoolReport:
		return "تقرير المدرسة"
	default:
		return "مستند"
	}
}
