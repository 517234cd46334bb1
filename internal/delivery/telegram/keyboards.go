package telegram

import (
	tele "gopkg.in/telebot.v3"

	"github.com/rekberinx/rekber-bot/internal/usecase/transaction"
)

// Menu-level callbacks live here; transaction lifecycle callbacks are
// defined next to the usecase that builds their keyboards.
var (
	btnNewTx        = tele.Btn{Unique: "menu_new_tx"}
	btnViewPayments = tele.Btn{Unique: "menu_payments"}
	btnHistory      = tele.Btn{Unique: "menu_history"}
	btnHelp         = tele.Btn{Unique: "menu_help"}
	btnMainMenu     = tele.Btn{Unique: "menu_main"}
	btnCheckJoin    = tele.Btn{Unique: "check_join"}
	btnClose        = tele.Btn{Unique: "close"}

	btnAdminActive    = tele.Btn{Unique: "admin_active_tx"}
	btnAdminPayments  = tele.Btn{Unique: "admin_payments"}
	btnAdminAddBank   = tele.Btn{Unique: "admin_add_bank"}
	btnAdminAddWallet = tele.Btn{Unique: "admin_add_ewallet"}
	btnAdminBroadcast = tele.Btn{Unique: "admin_broadcast"}
	btnAdminUsers     = tele.Btn{Unique: "admin_users"}
	btnAdminStats     = tele.Btn{Unique: "admin_stats"}
	btnAdminBan       = tele.Btn{Unique: "admin_ban"}
	btnAdminUnban     = tele.Btn{Unique: "admin_unban"}

	btnApprove        = tele.Btn{Unique: transaction.CbApprove}
	btnReject         = tele.Btn{Unique: transaction.CbReject}
	btnPaymentMethods = tele.Btn{Unique: transaction.CbPaymentMethods}
	btnSendProof      = tele.Btn{Unique: transaction.CbSendProof}
	btnViewProof      = tele.Btn{Unique: transaction.CbViewProof}
	btnNotifySeller   = tele.Btn{Unique: transaction.CbNotifySeller}
	btnSellerSent     = tele.Btn{Unique: transaction.CbSellerSent}
	btnBuyerConfirm   = tele.Btn{Unique: transaction.CbBuyerConfirm}
	btnBuyerComplaint = tele.Btn{Unique: transaction.CbBuyerComplaint}
	btnReleaseFunds   = tele.Btn{Unique: transaction.CbReleaseFunds}
)

func mainMenuMarkup() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(m.Data("📝 Buat Transaksi Baru", btnNewTx.Unique)),
		m.Row(
			m.Data("💳 Metode Pembayaran", btnViewPayments.Unique),
			m.Data("📊 Riwayat", btnHistory.Unique),
		),
		m.Row(m.Data("❓ Bantuan", btnHelp.Unique)),
	)
	return m
}

func joinGateMarkup(channel string) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(m.URL("📢 Join Channel", "https://t.me/"+trimAt(channel))),
		m.Row(m.Data("✅ Sudah Join", btnCheckJoin.Unique)),
	)
	return m
}

func backToMenuMarkup() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(m.Row(m.Data("🔙 Menu Utama", btnMainMenu.Unique)))
	return m
}

func adminPanelMarkup() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(m.Data("📋 Transaksi Aktif", btnAdminActive.Unique)),
		m.Row(m.Data("💳 Kelola Pembayaran", btnAdminPayments.Unique)),
		m.Row(
			m.Data("➕ Tambah Bank", btnAdminAddBank.Unique),
			m.Data("➕ Tambah E-Wallet", btnAdminAddWallet.Unique),
		),
		m.Row(m.Data("📢 Broadcast", btnAdminBroadcast.Unique)),
		m.Row(
			m.Data("👥 Users", btnAdminUsers.Unique),
			m.Data("📊 Statistik", btnAdminStats.Unique),
		),
		m.Row(
			m.Data("🚫 Ban User", btnAdminBan.Unique),
			m.Data("♻️ Unban User", btnAdminUnban.Unique),
		),
	)
	return m
}

func closeMarkup() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(m.Row(m.Data("❌ Tutup", btnClose.Unique)))
	return m
}

func trimAt(channel string) string {
	if len(channel) > 0 && channel[0] == '@' {
		return channel[1:]
	}
	return channel
}
