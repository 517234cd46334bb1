package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/rekberinx/rekber-bot/internal/domain"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/storage"
	"github.com/rekberinx/rekber-bot/internal/usecase/identity"
	"github.com/rekberinx/rekber-bot/internal/usecase/notify"
	"github.com/rekberinx/rekber-bot/internal/usecase/payment"
	"github.com/rekberinx/rekber-bot/internal/usecase/transaction"
)

// Handler routes inbound Telegram updates to the usecases. It owns no
// business rules: role and status checks live below, the handler only maps
// their outcomes back to chat responses.
type Handler struct {
	bot        *tele.Bot
	identity   *identity.Usecase
	payments   *payment.Usecase
	txs        *transaction.Usecase
	dispatcher *notify.Dispatcher
	proofs     *storage.ProofStore
	sessions   *sessionStore
	channel    string
	operatorID int64
}

func NewHandler(
	bot *tele.Bot,
	identityUC *identity.Usecase,
	paymentUC *payment.Usecase,
	txUC *transaction.Usecase,
	dispatcher *notify.Dispatcher,
	proofs *storage.ProofStore,
	channel string,
	operatorID int64,
) *Handler {
	return &Handler{
		bot:        bot,
		identity:   identityUC,
		payments:   paymentUC,
		txs:        txUC,
		dispatcher: dispatcher,
		proofs:     proofs,
		sessions:   newSessionStore(),
		channel:    channel,
		operatorID: operatorID,
	}
}

// Register wires every route. The gate middleware runs first on all of them.
func (h *Handler) Register() {
	h.bot.Use(h.gate)

	h.bot.Handle("/start", h.onStart)
	h.bot.Handle("/admin", h.onAdmin)

	h.bot.Handle(&btnCheckJoin, h.onCheckJoin)
	h.bot.Handle(&btnMainMenu, h.onMainMenu)
	h.bot.Handle(&btnClose, h.onClose)

	h.bot.Handle(&btnNewTx, h.onNewTransaction)
	h.bot.Handle(&btnViewPayments, h.onViewPayments)
	h.bot.Handle(&btnHistory, h.onHistory)
	h.bot.Handle(&btnHelp, h.onHelp)

	h.bot.Handle(&btnApprove, h.onApprove)
	h.bot.Handle(&btnReject, h.onReject)
	h.bot.Handle(&btnPaymentMethods, h.onCheckout)
	h.bot.Handle(&btnSendProof, h.onSendProof)
	h.bot.Handle(&btnViewProof, h.onViewProof)
	h.bot.Handle(&btnNotifySeller, h.onNotifySeller)
	h.bot.Handle(&btnSellerSent, h.onSellerSent)
	h.bot.Handle(&btnBuyerConfirm, h.onBuyerConfirm)
	h.bot.Handle(&btnBuyerComplaint, h.onBuyerComplaint)
	h.bot.Handle(&btnReleaseFunds, h.onReleaseFunds)

	h.bot.Handle(&btnAdminActive, h.onAdminActive)
	h.bot.Handle(&btnAdminPayments, h.onAdminPayments)
	h.bot.Handle(&btnAdminAddBank, h.onAdminAddPayment(domain.PaymentTypeBank))
	h.bot.Handle(&btnAdminAddWallet, h.onAdminAddPayment(domain.PaymentTypeEwallet))
	h.bot.Handle(&btnAdminBroadcast, h.onAdminBroadcast)
	h.bot.Handle(&btnAdminUsers, h.onAdminUsers)
	h.bot.Handle(&btnAdminStats, h.onAdminStats)
	h.bot.Handle(&btnAdminBan, h.onAdminSetBanState(stateBanRef))
	h.bot.Handle(&btnAdminUnban, h.onAdminSetBanState(stateUnbanRef))

	h.bot.Handle(tele.OnText, h.onText)
	h.bot.Handle(tele.OnPhoto, h.onProofUpload)
	h.bot.Handle(tele.OnDocument, h.onProofUpload)
}

// gate resolves the sender into a persisted user record and drops updates
// from banned users before any handler runs.
func (h *Handler) gate(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		sender := c.Sender()
		if sender == nil {
			return nil
		}

		ctx := context.Background()
		h.identity.Resolve(ctx, sender.ID, sender.Username, fullName(sender))

		if h.identity.IsBanned(ctx, sender.ID) {
			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{Text: bannedText, ShowAlert: true})
			}
			return c.Send(bannedText)
		}
		return next(c)
	}
}

func (h *Handler) onStart(c tele.Context) error {
	ctx := context.Background()
	h.sessions.clear(c.Sender().ID)

	// Admins skip the join gate.
	if !h.identity.IsAdmin(ctx, c.Sender().ID) && !h.identity.HasChannelMembership(ctx, c.Sender().ID) {
		return c.Send(joinGateText(h.channel), joinGateMarkup(h.channel), tele.ModeHTML)
	}
	return c.Send(welcomeText(fullName(c.Sender())), mainMenuMarkup(), tele.ModeHTML)
}

func (h *Handler) onCheckJoin(c tele.Context) error {
	ctx := context.Background()
	if !h.identity.HasChannelMembership(ctx, c.Sender().ID) {
		return c.Respond(&tele.CallbackResponse{
			Text:      "❌ Anda belum join channel. Silakan join terlebih dahulu!",
			ShowAlert: true,
		})
	}
	return c.Edit(joinedWelcomeText(fullName(c.Sender())), mainMenuMarkup(), tele.ModeHTML)
}

func (h *Handler) onMainMenu(c tele.Context) error {
	h.sessions.clear(c.Sender().ID)
	return c.Edit(welcomeText(fullName(c.Sender())), mainMenuMarkup(), tele.ModeHTML)
}

func (h *Handler) onClose(c tele.Context) error {
	return c.Delete()
}

func (h *Handler) onNewTransaction(c tele.Context) error {
	h.sessions.set(c.Sender().ID, session{state: stateWaitingFormat})
	return c.Edit(formatPromptText, backToMenuMarkup(), tele.ModeHTML)
}

func (h *Handler) onViewPayments(c tele.Context) error {
	banks, ewallets, err := h.payments.ActiveMethods(context.Background())
	if errors.Is(err, domain.ErrNoPaymentMethods) {
		return c.Edit("💳 Belum ada metode pembayaran yang tersedia.", backToMenuMarkup())
	}
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Terjadi kesalahan", ShowAlert: true})
	}
	return c.Edit(paymentMethodsText(banks, ewallets, false), backToMenuMarkup(), tele.ModeHTML)
}

func (h *Handler) onHistory(c tele.Context) error {
	txs, err := h.txs.History(context.Background(), c.Sender().ID)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Terjadi kesalahan", ShowAlert: true})
	}
	return c.Edit(historyText(txs), backToMenuMarkup(), tele.ModeHTML)
}

func (h *Handler) onHelp(c tele.Context) error {
	return c.Edit(helpText, backToMenuMarkup(), tele.ModeHTML)
}

func (h *Handler) onAdmin(c tele.Context) error {
	if !h.identity.IsAdmin(context.Background(), c.Sender().ID) {
		return c.Send(noAdminAccessText)
	}
	return c.Send("🔧 <b>ADMIN PANEL</b>\n\nPilih menu:", adminPanelMarkup(), tele.ModeHTML)
}

// ---- transaction lifecycle callbacks ----

func (h *Handler) onApprove(c tele.Context) error {
	code := c.Data()
	tx, err := h.txs.Approve(context.Background(), c.Sender().ID, code)
	if err != nil {
		return h.respondTransitionError(c, err)
	}
	if err := c.Edit(c.Message().Text+"\n\n✅ <b>DISETUJUI</b>", tele.ModeHTML); err != nil {
		slog.Warn("edit after approve failed", "tx_code", tx.Code, "error", err.Error())
	}
	return c.Respond(&tele.CallbackResponse{Text: "✅ Transaksi disetujui"})
}

func (h *Handler) onReject(c tele.Context) error {
	code := c.Data()
	tx, err := h.txs.Reject(context.Background(), c.Sender().ID, code)
	if err != nil {
		return h.respondTransitionError(c, err)
	}
	if err := c.Edit(c.Message().Text+"\n\n❌ <b>DITOLAK</b>", tele.ModeHTML); err != nil {
		slog.Warn("edit after reject failed", "tx_code", tx.Code, "error", err.Error())
	}
	return c.Respond(&tele.CallbackResponse{Text: "❌ Transaksi ditolak"})
}

// onCheckout shows the payment instruments to a buyer whose transaction was
// approved, with the proof-upload button attached.
func (h *Handler) onCheckout(c tele.Context) error {
	code := c.Data()
	banks, ewallets, err := h.payments.ActiveMethods(context.Background())
	if errors.Is(err, domain.ErrNoPaymentMethods) {
		return c.Respond(&tele.CallbackResponse{
			Text:      "❌ Belum ada metode pembayaran. Hubungi admin.",
			ShowAlert: true,
		})
	}
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Terjadi kesalahan", ShowAlert: true})
	}

	m := &tele.ReplyMarkup{}
	m.Inline(m.Row(m.Data("📤 Kirim Bukti Transfer", transaction.CbSendProof, code)))
	return c.Send(paymentMethodsText(banks, ewallets, true), m, tele.ModeHTML)
}

func (h *Handler) onSendProof(c tele.Context) error {
	code := c.Data()
	tx, err := h.txs.GetByCode(context.Background(), code)
	if err != nil {
		return h.respondTransitionError(c, err)
	}
	if tx.Status != domain.StatusApproved {
		return c.Respond(&tele.CallbackResponse{
			Text:      "⚠️ Transaksi tidak dalam status menunggu pembayaran",
			ShowAlert: true,
		})
	}
	h.sessions.set(c.Sender().ID, session{state: stateWaitingProof, txCode: code})
	return c.Send(proofPromptText, tele.ModeHTML)
}

func (h *Handler) onViewProof(c tele.Context) error {
	ctx := context.Background()
	if !h.identity.IsAdmin(ctx, c.Sender().ID) {
		return c.Respond(&tele.CallbackResponse{Text: accessDeniedAlert, ShowAlert: true})
	}

	code := c.Data()
	tx, err := h.txs.GetByCode(ctx, code)
	if err != nil {
		return h.respondTransitionError(c, err)
	}
	if tx.ProofPath == "" || !h.proofs.Exists(tx.ProofPath) {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Bukti transfer tidak ditemukan", ShowAlert: true})
	}
	return c.Send(&tele.Document{
		File:    tele.FromDisk(tx.ProofPath),
		Caption: "🧾 Bukti transfer " + tx.Code,
	})
}

func (h *Handler) onNotifySeller(c tele.Context) error {
	code := c.Data()
	err := h.txs.NotifySeller(context.Background(), c.Sender().ID, code)
	if errors.Is(err, domain.ErrSellerNotRegistered) {
		return c.Respond(&tele.CallbackResponse{
			Text:      "❌ Seller belum terdaftar di bot. Minta seller /start terlebih dahulu.",
			ShowAlert: true,
		})
	}
	if err != nil {
		return h.respondTransitionError(c, err)
	}
	return c.Respond(&tele.CallbackResponse{Text: "✅ Seller telah dinotifikasi"})
}

func (h *Handler) onSellerSent(c tele.Context) error {
	code := c.Data()
	tx, err := h.txs.Deliver(context.Background(), c.Sender().ID, code)
	if err != nil {
		return h.respondTransitionError(c, err)
	}
	if err := c.Edit(c.Message().Text+"\n\n📦 <b>BARANG DIKIRIM</b>", tele.ModeHTML); err != nil {
		slog.Warn("edit after deliver failed", "tx_code", tx.Code, "error", err.Error())
	}
	return c.Respond(&tele.CallbackResponse{Text: "✅ Buyer telah dinotifikasi"})
}

func (h *Handler) onBuyerConfirm(c tele.Context) error {
	code := c.Data()
	if _, err := h.txs.Complete(context.Background(), c.Sender().ID, code); err != nil {
		return h.respondTransitionError(c, err)
	}
	return c.Edit(buyerConfirmedEditText, tele.ModeHTML)
}

func (h *Handler) onBuyerComplaint(c tele.Context) error {
	code := c.Data()
	h.dispatcher.Notify(context.Background(), h.operatorID,
		"⚠️ <b>KELUHAN BUYER</b>\n\nKode: <code>"+code+"</code>\n"+
			"Buyer melaporkan masalah pada transaksi ini. Segera tindak lanjuti.", nil)
	return c.Respond(&tele.CallbackResponse{Text: complaintAlert, ShowAlert: true})
}

func (h *Handler) onReleaseFunds(c tele.Context) error {
	code := c.Data()
	tx, err := h.txs.ReleaseFunds(context.Background(), c.Sender().ID, code)
	if err != nil {
		return h.respondTransitionError(c, err)
	}
	if err := c.Edit(c.Message().Text+"\n\n💸 <b>DANA DICAIRKAN</b>", tele.ModeHTML); err != nil {
		slog.Warn("edit after release failed", "tx_code", tx.Code, "error", err.Error())
	}
	return c.Respond(&tele.CallbackResponse{Text: "✅ Dana dicairkan ke seller"})
}

func (h *Handler) respondTransitionError(c tele.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		return c.Respond(&tele.CallbackResponse{Text: notFoundAlert, ShowAlert: true})
	case errors.Is(err, domain.ErrNotAllowed):
		return c.Respond(&tele.CallbackResponse{Text: accessDeniedAlert, ShowAlert: true})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Respond(&tele.CallbackResponse{Text: "⚠️ Status transaksi sudah berubah", ShowAlert: true})
	default:
		slog.Error("callback handling failed", "error", err.Error())
		return c.Respond(&tele.CallbackResponse{Text: "❌ Terjadi kesalahan", ShowAlert: true})
	}
}

// ---- admin panel ----

func (h *Handler) requireAdmin(c tele.Context) bool {
	if h.identity.IsAdmin(context.Background(), c.Sender().ID) {
		return true
	}
	_ = c.Respond(&tele.CallbackResponse{Text: accessDeniedAlert, ShowAlert: true})
	return false
}

func (h *Handler) onAdminActive(c tele.Context) error {
	if !h.requireAdmin(c) {
		return nil
	}
	txs, err := h.txs.ListActive(context.Background())
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Terjadi kesalahan", ShowAlert: true})
	}
	return c.Edit(activeTransactionsText(txs), closeMarkup(), tele.ModeHTML)
}

func (h *Handler) onAdminPayments(c tele.Context) error {
	if !h.requireAdmin(c) {
		return nil
	}
	methods, err := h.payments.AllMethods(context.Background())
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Terjadi kesalahan", ShowAlert: true})
	}
	return c.Edit(managePaymentsText(methods), closeMarkup(), tele.ModeHTML)
}

func (h *Handler) onAdminAddPayment(pmType domain.PaymentMethodType) tele.HandlerFunc {
	return func(c tele.Context) error {
		if !h.requireAdmin(c) {
			return nil
		}
		h.sessions.set(c.Sender().ID, session{state: statePaymentDetails, paymentType: pmType})
		return c.Edit(addPaymentPromptText(pmType), tele.ModeHTML)
	}
}

func (h *Handler) onAdminBroadcast(c tele.Context) error {
	if !h.requireAdmin(c) {
		return nil
	}
	h.sessions.set(c.Sender().ID, session{state: stateBroadcast})
	return c.Edit(broadcastPromptText, tele.ModeHTML)
}

func (h *Handler) onAdminUsers(c tele.Context) error {
	if !h.requireAdmin(c) {
		return nil
	}
	total := h.identity.CountUsers(context.Background())
	return c.Edit(fmt.Sprintf("👥 <b>USERS</b>\n\nTotal user terdaftar: %d", total), closeMarkup(), tele.ModeHTML)
}

func (h *Handler) onAdminStats(c tele.Context) error {
	if !h.requireAdmin(c) {
		return nil
	}
	ctx := context.Background()
	stats, err := h.txs.Statistics(ctx)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Terjadi kesalahan", ShowAlert: true})
	}
	users := h.identity.CountUsers(ctx)
	return c.Edit(statsText(users, stats.Total, stats.Completed, stats.Pending), closeMarkup(), tele.ModeHTML)
}

func (h *Handler) onAdminSetBanState(state chatState) tele.HandlerFunc {
	prompt := "🚫 Kirim user ID atau @username yang ingin di-ban:"
	if state == stateUnbanRef {
		prompt = "♻️ Kirim user ID atau @username yang ingin di-unban:"
	}
	return func(c tele.Context) error {
		if !h.requireAdmin(c) {
			return nil
		}
		h.sessions.set(c.Sender().ID, session{state: state})
		return c.Edit(prompt)
	}
}

// ---- free-text and upload dispatch ----

func (h *Handler) onText(c tele.Context) error {
	sess := h.sessions.get(c.Sender().ID)

	switch sess.state {
	case stateWaitingFormat:
		return h.handleSubmission(c)
	case statePaymentDetails:
		return h.handlePaymentForm(c, sess.paymentType)
	case stateBroadcast:
		return h.handleBroadcast(c)
	case stateBanRef:
		return h.handleBanRef(c, true)
	case stateUnbanRef:
		return h.handleBanRef(c, false)
	}
	return nil
}

func (h *Handler) handleSubmission(c tele.Context) error {
	tx, err := h.txs.Submit(context.Background(), c.Sender().ID, c.Text())
	if errors.Is(err, domain.ErrMalformedSubmission) {
		return c.Send(malformedSubmissionText)
	}
	if err != nil {
		slog.Error("transaction submission failed", "user_id", c.Sender().ID, "error", err.Error())
		return c.Send("❌ Terjadi kesalahan. Silakan coba lagi.")
	}

	h.sessions.clear(c.Sender().ID)
	return c.Send(submissionCreatedText(tx.Code), backToMenuMarkup(), tele.ModeHTML)
}

func (h *Handler) handlePaymentForm(c tele.Context, pmType domain.PaymentMethodType) error {
	pm, err := h.payments.Add(context.Background(), pmType, c.Text())
	if errors.Is(err, domain.ErrMalformedPaymentForm) {
		return c.Send("❌ Format salah! Kirim 3 baris: nama, nomor, pemilik.")
	}
	if err != nil {
		return c.Send("❌ Terjadi kesalahan. Silakan coba lagi.")
	}

	h.sessions.clear(c.Sender().ID)
	return c.Send(paymentAddedText(pm))
}

func (h *Handler) handleBroadcast(c tele.Context) error {
	h.sessions.clear(c.Sender().ID)
	msg := c.Message()

	success, failed, err := h.dispatcher.Broadcast(context.Background(), func(chatID int64) error {
		_, sendErr := h.bot.Copy(tele.ChatID(chatID), msg)
		return sendErr
	})
	if err != nil {
		return c.Send("❌ Broadcast gagal dijalankan.")
	}
	return c.Send(broadcastDoneText(success, failed))
}

func (h *Handler) handleBanRef(c tele.Context, ban bool) error {
	ctx := context.Background()
	h.sessions.clear(c.Sender().ID)

	ref := strings.TrimSpace(c.Text())
	var (
		user *domain.User
		err  error
	)
	if ban {
		user, err = h.identity.Ban(ctx, c.Sender().ID, ref)
	} else {
		user, err = h.identity.Unban(ctx, c.Sender().ID, ref)
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		return c.Send("❌ User tidak ditemukan.")
	}
	if err != nil {
		return c.Send("❌ Terjadi kesalahan. Silakan coba lagi.")
	}

	if ban {
		return c.Send("🚫 User " + user.Handle + " telah di-ban.")
	}
	return c.Send("♻️ User " + user.Handle + " telah di-unban.")
}

// onProofUpload stores the uploaded proof on disk, then hands the path to
// the lifecycle. A broadcast session takes precedence so admins can
// broadcast media too.
func (h *Handler) onProofUpload(c tele.Context) error {
	sess := h.sessions.get(c.Sender().ID)

	if sess.state == stateBroadcast {
		return h.handleBroadcast(c)
	}
	if sess.state != stateWaitingProof || sess.txCode == "" {
		return nil
	}

	var (
		file tele.File
		ext  string
	)
	switch {
	case c.Message().Photo != nil:
		file = c.Message().Photo.File
		ext = "jpg"
	case c.Message().Document != nil:
		file = c.Message().Document.File
		ext = storage.ExtFromName(c.Message().Document.FileName)
	default:
		return nil
	}

	path := h.proofs.Path(sess.txCode, ext)
	if err := h.bot.Download(&file, path); err != nil {
		slog.Error("proof download failed", "tx_code", sess.txCode, "error", err.Error())
		return c.Send("❌ Gagal menyimpan bukti transfer. Silakan coba lagi.")
	}

	if _, err := h.txs.SubmitProof(context.Background(), c.Sender().ID, sess.txCode, path); err != nil {
		return h.respondProofError(c, err)
	}

	h.sessions.clear(c.Sender().ID)
	return c.Send(proofReceivedText(sess.txCode), backToMenuMarkup(), tele.ModeHTML)
}

func (h *Handler) respondProofError(c tele.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		return c.Send(notFoundAlert)
	case errors.Is(err, domain.ErrNotAllowed):
		return c.Send(accessDeniedAlert)
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Send("⚠️ Transaksi tidak dalam status menunggu pembayaran.")
	default:
		slog.Error("proof submission failed", "error", err.Error())
		return c.Send("❌ Terjadi kesalahan. Silakan coba lagi.")
	}
}

func fullName(u *tele.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.Username
	}
	return name
}
