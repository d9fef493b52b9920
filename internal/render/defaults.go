package render

import "github.com/schoolledger/school_ledger_app/internal/core/domain"

// errorDocument is the fixed, self-contained markup returned whenever
// resolution or rendering fails. It must never itself require a template
// lookup or a context field.
const errorDocument = `<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head>
<meta charset="utf-8">
<title>خطأ في إنشاء المستند</title>
<style>
body { font-family: Arial, sans-serif; text-align: center; padding: 60px 20px; color: #333; }
h1 { color: #b00020; font-size: 22px; }
p { font-size: 14px; color: #666; }
</style>
</head>
<body>
<h1>تعذر إنشاء المستند المطلوب</h1>
<p>حدث خطأ أثناء تجهيز هذا المستند للطباعة. يرجى المحاولة مرة أخرى أو مراجعة مسؤول النظام.</p>
</body>
</html>
`

// ErrorDocument returns the fixed error document markup.
func ErrorDocument() string {
	return errorDocument
}

const baseStyle = `<style>
@page { size: {{.page_size}}; margin: {{.page_margins}}; }
body { font-family: Arial, sans-serif; direction: rtl; color: #222; margin: 0; }
.header { text-align: center; border-bottom: 2px solid #2c3e50; padding-bottom: 8px; margin-bottom: 16px; }
.header h1 { font-size: 20px; margin: 0; }
.header .meta { font-size: 11px; color: #777; }
table { width: 100%; border-collapse: collapse; margin: 12px 0; }
th, td { border: 1px solid #bbb; padding: 6px 8px; font-size: 12px; text-align: right; }
th { background: #f0f3f6; }
.totals { font-weight: bold; background: #fafafa; }
.footer { margin-top: 24px; font-size: 10px; color: #888; text-align: center; border-top: 1px solid #ddd; padding-top: 6px; }
</style>`

const headerBlock = `{{if .show_header}}<div class="header">
<h1>{{.page_title}}</h1>
<div class="meta">تاريخ الطباعة: {{.print_date}} — الساعة {{.current_time}}</div>
</div>{{end}}`

const footerBlock = `{{if .show_footer}}<div class="footer">{{.app_version}} — {{.printed_by}}</div>{{end}}`

const studentReportTemplate = `<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head><meta charset="utf-8"><title>{{.page_title}}</title>
` + baseStyle + `
</head>
<body>
` + headerBlock + `
<table>
<tr><th>الاسم</th><td>{{.student.name}}</td></tr>
<tr><th>المدرسة</th><td>{{.student.school}}</td></tr>
<tr><th>الصف</th><td>{{.student.grade}}</td></tr>
<tr><th>الشعبة</th><td>{{.student.section}}</td></tr>
<tr><th>الجنس</th><td>{{.student.gender}}</td></tr>
<tr><th>الهاتف</th><td>{{.student.phone}}</td></tr>
<tr><th>الحالة</th><td>{{.student.status}}</td></tr>
<tr class="totals"><th>القسط الكلي</th><td>{{currency .student.total_fee}}</td></tr>
</table>
` + footerBlock + `
</body>
</html>
`

const studentListTemplate = `<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head><meta charset="utf-8"><title>{{.page_title}}</title>
` + baseStyle + `
</head>
<body>
` + headerBlock + `
{{with .filter_info}}<p style="font-size:12px;color:#555;">{{.}}</p>{{end}}
<table>
<tr><th>#</th><th>الاسم</th><th>المدرسة</th><th>الصف</th><th>الشعبة</th><th>الهاتف</th><th>الحالة</th><th>القسط الكلي</th></tr>
{{range $i, $s := .students}}
<tr><td>{{$i}}</td><td>{{$s.name}}</td><td>{{$s.school}}</td><td>{{$s.grade}}</td><td>{{$s.section}}</td><td>{{$s.phone}}</td><td>{{$s.status}}</td><td>{{currency $s.total_fee}}</td></tr>
{{end}}
</table>
` + footerBlock + `
</body>
</html>
`

const financialReportTemplate = `<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head><meta charset="utf-8"><title>{{.page_title}}</title>
` + baseStyle + `
</head>
<body>
` + headerBlock + `
{{with .date_range}}<p style="font-size:12px;color:#555;">الفترة: {{.}}</p>{{end}}
<table>
<tr><th>إجمالي الإيرادات</th><td>{{currency .financial_data.total_income}}</td></tr>
<tr><th>إجمالي المصروفات</th><td>{{currency .financial_data.total_expenses}}</td></tr>
<tr class="totals"><th>الصافي</th><td>{{if .financial_data.net_balance}}{{currency .financial_data.net_balance}}{{else}}{{currency (sub .financial_data.total_income .financial_data.total_expenses)}}{{end}}</td></tr>
</table>
` + footerBlock + `
</body>
</html>
`

const paymentReceiptTemplate = `<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head><meta charset="utf-8"><title>{{.page_title}}</title>
` + baseStyle + `
</head>
<body>
` + headerBlock + `
<table>
<tr><th>رقم الإيصال</th><td>{{.receipt.id}}</td></tr>
<tr><th>اسم الطالب</th><td>{{.receipt.student_name}}</td></tr>
<tr><th>المدرسة</th><td>{{.receipt.school_name}}</td></tr>
<tr><th>تاريخ الدفع</th><td>{{localdate .receipt.payment_date}}</td></tr>
<tr><th>طريقة الدفع</th><td>{{.receipt.payment_method}}</td></tr>
<tr><th>البيان</th><td>{{.receipt.description}}</td></tr>
<tr class="totals"><th>المبلغ</th><td>{{currency .receipt.amount}}</td></tr>
</table>
<p style="font-size:11px;color:#555;">حرر هذا الإيصال بتاريخ {{.current_date}} الساعة {{.current_time}}.</p>
` + footerBlock + `
</body>
</html>
`

const salarySlipTemplate = `<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head><meta charset="utf-8"><title>{{.page_title}}</title>
` + baseStyle + `
</head>
<body>
` + headerBlock + `
<table>
<tr><th>اسم الموظف</th><td>{{.salary.employee_name}}</td></tr>
<tr><th>الوظيفة</th><td>{{.salary.position}}</td></tr>
<tr><th>القسم</th><td>{{.salary.department}}</td></tr>
<tr><th>الشهر</th><td>{{.salary.month_year}}</td></tr>
<tr><th>الراتب الأساسي</th><td>{{currency .salary.basic_salary}}</td></tr>
<tr><th>العلاوات</th><td>{{currency .salary.allowances}}</td></tr>
<tr><th>الاستقطاعات</th><td>{{currency .salary.deductions}}</td></tr>
<tr class="totals"><th>صافي الراتب</th><td>{{currency .salary.net_salary}}</td></tr>
</table>
` + footerBlock + `
</body>
</html>
`

const staffReportTemplate = `<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head><meta charset="utf-8"><title>{{.page_title}}</title>
` + baseStyle + `
</head>
<body>
` + headerBlock + `
<table>
<tr><th>#</th><th>الاسم</th><th>الوظيفة</th><th>القسم</th><th>الهاتف</th><th>الراتب الأساسي</th></tr>
{{range $i, $e := .staff}}
<tr><td>{{$i}}</td><td>{{$e.name}}</td><td>{{$e.position}}</td><td>{{$e.department}}</td><td>{{$e.phone}}</td><td>{{currency $e.basic_salary}}</td></tr>
{{end}}
</table>
` + footerBlock + `
</body>
</html>
`

const schoolReportTemplate = `<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head><meta charset="utf-8"><title>{{.page_title}}</title>
` + baseStyle + `
</head>
<body>
` + headerBlock + `
<table>
<tr><th>اسم المدرسة</th><td>{{.school.name}}</td></tr>
<tr><th>العنوان</th><td>{{.school.address}}</td></tr>
<tr><th>الهاتف</th><td>{{.school.phone}}</td></tr>
</table>
<table>
<tr><th>عدد الطلاب</th><td>{{.stats.total_students}}</td></tr>
<tr><th>عدد الموظفين</th><td>{{.stats.total_staff}}</td></tr>
<tr><th>إجمالي الإيرادات</th><td>{{currency .stats.total_revenue}}</td></tr>
<tr><th>إجمالي المصروفات</th><td>{{currency .stats.total_expenses}}</td></tr>
</table>
` + footerBlock + `
</body>
</html>
`

const customTemplate = `<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head><meta charset="utf-8"><title>{{.page_title}}</title>
` + baseStyle + `
</head>
<body>
` + headerBlock + `
<div style="font-size:13px;">{{.content}}</div>
` + footerBlock + `
</body>
</html>
`

// defaultTemplates is the built-in template catalog, one markup document per
// canonical document type.
var defaultTemplates = map[domain.DocumentType]string{
	domain.DocStudentReport:   studentReportTemplate,
	domain.DocStudentList:     studentListTemplate,
	domain.DocFinancialReport: financialReportTemplate,
	domain.DocPaymentReceipt:  paymentReceiptTemplate,
	domain.DocSalarySlip:      salarySlipTemplate,
	domain.DocStaffReport:     staffReportTemplate,
	domain.DocSchoolReport:    schoolReportTemplate,
	domain.DocCustom:          customTemplate,
}
