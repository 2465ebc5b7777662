package catalog

import "rdct/internal/distro"

// Script fragments emitted for each selectable task. Each fragment is a
// complete, standalone block of bash; the synthesizer joins them in
// catalogue order.
const (
	scriptGnomeMinimal = "sudo dnf install -y gdm gnome-browser-connector\nsudo systemctl set-default graphical.target"
	scriptGnomeFull    = "sudo dnf groupinstall -y 'Workstation'\nsudo systemctl set-default graphical.target"

	scriptSwayFromSource = "# This is a complex process and requires many dependencies.\n# This script is a placeholder for the required commands.\nsudo dnf install -y ninja-build meson gcc wayland-devel wayland-protocols-devel libinput-devel libxcb-devel libxkbcommon-devel pixman-devel"
	scriptSwayWofi       = "sudo dnf install -y wofi"

	scriptRepoCeph    = "sudo dnf install -y ceph-common"
	scriptRepoCRB     = "sudo dnf config-manager --set-enabled codeready-builder-for-rhel-10-rhui-rpms || sudo dnf config-manager --set-enabled crb"
	scriptRepoEPEL    = "sudo dnf install -y epel-release"
	scriptRepoFlathub = "sudo flatpak remote-add --if-not-exists flathub https://flathub.org/repo/flathub.flatpakrepo"
	scriptRepoRT      = "sudo dnf config-manager --set-enabled rt"
	scriptRepoHA      = "sudo dnf config-manager --set-enabled ha"

	scriptVirtKVM            = "sudo dnf install -y @virtualization\nsudo systemctl enable --now libvirtd"
	scriptVirtCockpitMinimal = "sudo dnf install -y cockpit\nsudo systemctl enable --now cockpit.socket\nsudo firewall-cmd --add-service=cockpit --permanent\nsudo firewall-cmd --reload"
	scriptVirtCockpitFull    = "sudo dnf install -y cockpit cockpit-machines\nsudo systemctl enable --now cockpit.socket\nsudo firewall-cmd --add-service=cockpit --permanent\nsudo firewall-cmd --reload"

	scriptVPNOpenVPN     = "sudo dnf install -y NetworkManager-openvpn NetworkManager-openvpn-gnome"
	scriptVPNOpenConnect = "sudo dnf install -y NetworkManager-openconnect NetworkManager-openconnect-gnome"
	scriptVPNL2TP        = "sudo dnf install -y NetworkManager-l2tp NetworkManager-l2tp-gnome"
	scriptVPNLibreSwan   = "sudo dnf install -y NetworkManager-libreswan NetworkManager-libreswan-gnome"
	scriptVPNStrongSwan  = "sudo dnf install -y strongswan strongswan-charon-nm"
	scriptVPNPPTP        = "sudo dnf install -y NetworkManager-pptp NetworkManager-pptp-gnome"
)

// Build assembles the full catalogue for the detected distribution. The
// only distribution-sensitive entry is the CodeReady Builder repository,
// which RHEL names differently from CentOS.
//
// Several groups are intentionally empty: they are placeholders for task
// families that have no scripts yet, and they double as navigable dead ends
// the UI has to tolerate.
func Build(d distro.Distribution) *Tree {
	b := NewBuilder()

	gnome := b.Group("Gnome DE",
		b.Group("Environment Installation",
			b.Item("Minimal Installation", scriptGnomeMinimal),
			b.Item("Full Installation", scriptGnomeFull),
		),
		b.Group("Customization",
			b.Group("Extensions",
				b.Group("Tiling WM"),
				b.Group("Top Bar"),
				b.Group("Desktop Functions"),
				b.Group("Search"),
			),
		),
	)

	sway := b.Group("Sway WM",
		b.Group("Environment Installation",
			b.Item("Compile from Source", scriptSwayFromSource),
		),
		b.Group("Customization",
			b.Item("Wofi", scriptSwayWofi),
		),
	)

	crbName := "CRB"
	if d == distro.RHEL {
		crbName = "CodeReady Builder"
	}

	repos := b.Group("Repositories",
		b.Group("Add Repositories",
			b.Item("CEPH", scriptRepoCeph),
			b.Item(crbName, scriptRepoCRB),
			b.Item("EPEL", scriptRepoEPEL),
			b.Item("Flathub", scriptRepoFlathub),
			b.Item("Real-Time (RT)", scriptRepoRT),
			b.Item("High Availability (HA)", scriptRepoHA),
		),
	)

	virt := b.Group("Virtualization",
		b.Item("KVM (Core & Tools)", scriptVirtKVM),
		b.Group("Cockpit",
			b.Item("Minimal Install", scriptVirtCockpitMinimal),
			b.Item("Full Install (with Machines)", scriptVirtCockpitFull),
		),
	)

	net := b.Group("Networking",
		b.Group("NetworkManager",
			b.Item("OpenVPN", scriptVPNOpenVPN),
			b.Item("OpenConnect", scriptVPNOpenConnect),
			b.Item("L2TP", scriptVPNL2TP),
			b.Item("LibreSwan", scriptVPNLibreSwan),
			b.Item("StrongSwan", scriptVPNStrongSwan),
			b.Item("PPTP", scriptVPNPPTP),
		),
		b.Group("KVM (libvirt networks)"),
	)

	root := b.Group("Main Menu",
		b.Group("Graphical Environments", gnome, sway),
		repos,
		virt,
		net,
		b.Group("Hardening"),
	)

	return b.Tree(root)
}
