package core

import "wacs.com.ng/support-chatbot/internal/store"

// faqCatalog is the WACS knowledge base. It is read-only for the lifetime
// of the process; the retriever embeds and indexes it once at startup.
var faqCatalog = []store.FAQ{
	{
		Question: `How can I effect stoppage on my loan deductions?`,
		Answer:   `For deductions under WACS, the description on your payslip begins with "WACS" followed by the name of the financial institution. Kindly send your letter of non-indebtedness to support@wacs.com.ng. For Cooperative deductions labeled as "COOP" and "CTLS", send your letter to your desk officer. For deductions not on your payslip, contact support@remita.net. For Police, Military, and Paramilitary officers, obtain a letter from the financial institution and forward it to your desk officer.`,
		Category: "loan_deductions",
	},
	{
		Question: `What is WACS?`,
		Answer:   `WACS is an acronym for Workers Aggregated Credit Scheme. It is a platform designed to solve credit access difficulties encountered by civil servants, providing end-to-end solutions for loan management.`,
		Category: "general",
	},
	{
		Question: `How can I get a Letter of Non-Indebtedness?`,
		Answer: `Kindly contact the microfinance bank you are indebted to for a letter of non indebtedness. For deductions under WACS, the description on your payslip begins with "WACS" followed by the name of the financial institution. Kindly send your letter of non-indebtedness to support@wacs.com.ng.
For Cooperative deductions, these appear on your payslip and are labeled as "COOP." and "CTLS" Kindly send your letter of non-indebtedness to your desk officer to effect stoppage.`,
		Category: "loan_management",
	},
	{
		Question: `Does IPPIS give out loans?`,
		Answer:   `No, IPPIS does not issue loans. However, you can visit the IPPIS-OAGF application to request a loan from any financial institution with the loan product that suits your needs.`,
		Category: "general",
	},
	{
		Question: `Where can I see my loan deduction?`,
		Answer:   `You can view your loan deductions on your payslip, except for loans processed through Remita. For Remita loan details, please contact support@remita.net`,
		Category: "loan_deductions",
	},
	{
		Question: `How can I get my refund?`,
		Answer:   `For refund-related issues, please contact your financial institution directly.`,
		Category: "payment",
	},
	{
		Question: `Where can I get my payslip?`,
		Answer:   `You can obtain your payslip from your desk officer or by logging into the IPPIS-OAGF application using your IPPIS number.`,
		Category: "general",
	},
	{
		Question: `My net pay is different from what I received as salary. What should I do?`,
		Answer:   `Review your payslip to verify all statutory and non-statutory deductions. If the net pay on your payslip differs from what you received, direct your complaint to your financial institution or Remita via support@remita.net`,
		Category: "payment",
	},
	{
		Question: `How can I get my loan statement?`,
		Answer:   `Please contact your financial institution to request your loan statement of account.`,
		Category: "loan_management",
	},
	{
		Question: `I did not request for a loan, but I was credited by WACS. How do I refund the money?`,
		Answer:   `Kindly provide the transaction receipt, name, and IPPIS number to support@wacs.com.ng and a response will be provided within 48 hours.`,
		Category: "loan_management",
	},
	{
		Question: `I have liquidated my loan, but deductions are still ongoing. What should I do?`,
		Answer:   `For WACS deductions (beginning with "WACS" on your payslip), send your letter of non-indebtedness to support@wacs.com.ng. For Cooperative deductions (labeled "COOP" and "CTLS"), send to your desk officer. For deductions not on your payslip, contact support@remita.net. For Police, Military, and Paramilitary officers, obtain a letter from the financial institution and forward to your desk officer.`,
		Category: "loan_deductions",
	},
	{
		Question: `I was short-paid. What should I do?`,
		Answer:   `Kindly review your payslip to see all deductions, as all deductions from your salary are reflected there. You can also call the IPPIS support line at 07002754774 and follow the prompts for assistance.`,
		Category: "payment",
	},
	{
		Question: `I applied for a loan through the IPPIS-OAGF Mobile application yesterday but I have not received it. What should I do?`,
		Answer:   `Loan disbursements are typically processed within 48 hours. If you have not received your loan after this period, kindly send a mail to support@wacs.com.ng with your complaint and feedback will be provided.`,
		Category: "loan_application",
	},
	{
		Question: `I applied for a loan through a registered lender on the WACS platform but I have not received it. What should I do?`,
		Answer:   `Loan disbursements are typically processed within 48 hours. If you have not received your loan after this period, kindly send a mail to support@wacs.com.ng with your complaint and feedback will be provided.`,
		Category: "loan_application",
	},
	{
		Question: `How can I check my loan balance?`,
		Answer:   `Kindly log into the IPPIS-OAGF app to view your loan balance on the dashboard or alternatively contact the lender for the loan balance.`,
		Category: "loan_management",
	},
	{
		Question: `Who can apply for a loan through IPPIS-OAGF Application?`,
		Answer:   `Only Federal Government employees who possess a valid IPPIS number and meet the eligibility criteria are eligible to apply through the platform.`,
		Category: "eligibility",
	},
	{
		Question: `How much can I borrow through the IPPIS-OAGF Application?`,
		Answer:   `The maximum loan amount is determined by the specific loan product and the civil servant's eligibility in accordance with civil service rules.`,
		Category: "eligibility",
	},
	{
		Question: `What is the interest rate for loans offered through IPPIS-OAGF?`,
		Answer:   `Interest rates vary based on the loan product offered by each financial institution and are clearly displayed by the respective lenders on the platform.`,
		Category: "loan_terms",
	},
	{
		Question: `Can I change the repayment schedule for my loan after approval?`,
		Answer:   `No. Once a loan is approved, the repayment schedule cannot be modified.`,
		Category: "loan_terms",
	},
	{
		Question: `Can I apply for a loan through the IPPIS-OAGF Application if I am not a government worker?`,
		Answer:   `No. Only Federal Government employees with a valid IPPIS Number are eligible to register on the WACS platform.`,
		Category: "eligibility",
	},
	{
		Question: `How do I repay my loan?`,
		Answer:   `Loan repayments are automatically deducted from your salary.`,
		Category: "loan_repayment",
	},
	{
		Question: `When do I start repaying my loan?`,
		Answer:   `A moratorium period is determined by the financial institution based on the specific loan product you applied for. Please review your loan details carefully.`,
		Category: "loan_repayment",
	},
	{
		Question: `Which account will my loan be paid into?`,
		Answer:   `All loan disbursements are sent directly to your salary account.`,
		Category: "loan_disbursement",
	},
	{
		Question: `How can I contact IPPIS Support?`,
		Answer:   `You can contact IPPIS Support via email at support@ippis.gov.ng or call 0700 275 4774 and follow the prompt.`,
		Category: "support",
	},
	{
		Question: `How can I differentiate between WACS, Remita, and Cooperative deductions?`,
		Answer:   `All WACS deductions begin with the word "WACS" followed by the name of the Financial Institution and appear on your payslip. Cooperative deductions are labeled as "COOP" and also appear on your payslip. However, Remita deductions do not appear on civil servants payslips.`,
		Category: "loan_deductions",
	},
	{
		Question: `I didn't request a loan but was erroneously deducted?`,
		Answer:   `Kindly contact IPPIS Support via email at support@ippis.gov.ng or call 0700 275 4774 for assistance.`,
		Category: "loan_deductions",
	},
	{
		Question: `How can I get Lenders Contact Information?`,
		Answer:   `Kindly contact IPPIS Support via email at support@ippis.gov.ng or call 0700 275 4774 for assistance.`,
		Category: "support",
	},
	{
		Question: `How can I request for a loan?`,
		Answer:   `You can request for a loan through the IPPIS-OAGF application portal. Note that only MDA Federal Civil Servants can request for a loan through this application.`,
		Category: "loan_application",
	},
	{
		Question: `How can I update my phone number?`,
		Answer:   `You can update your phone number through your desk officer in your ministry.`,
		Category: "account_management",
	},
	{
		Question: `I have not received my salary for this Month?`,
		Answer:   `Kindly send your Name, IPPIS number, Ministry and bank statement to support@ippis.gov.ng for assistance.`,
		Category: "payment",
	},
	{
		Question: `I would like to update my maiden name. I just got married.`,
		Answer:   `Kindly notify your desk officer to write a letter to the head of service for change of name. Additionally, include a copy of your marriage certificate, newspaper publication and all other necessary documents.`,
		Category: "account_management",
	},
	{
		Question: `How can I change my Account details on my Payslip?`,
		Answer:   `Kindly reach out to your desk officer or payroller to update your account details.`,
		Category: "account_management",
	},
	{
		Question: `How can I change my date of birth?`,
		Answer:   `Kindly submit a written request to the Head of Service through your desk officer to update your date of birth.`,
		Category: "account_management",
	},
	{
		Question: `I experienced an increase in my loan deduction?`,
		Answer:   `Review your payslip to verify all deduction amounts. However, you can direct your complaint to your financial institution.`,
		Category: "loan_deductions",
	},
}

// FAQCount reports the catalog size, surfaced by the health endpoint.
func FAQCount() int {
	return len(faqCatalog)
}
