// Package gcnreg trains graph convolutional networks for node classification
// with a Rademacher complexity penalty and reports the Dirichlet energy of the
// logits after every step.
//
// 🚀 What is inside?
//
//	A full-batch, CPU-only training stack with hand-written gradients:
//		• Graphs: node features, labels, train/val/test masks, edge index
//		• Matrix kernels: dense and CSR products, row-parallel over errgroup
//		• Model: GCN layers with dropout and DropConnect
//		• Penalties: DropConnect Rademacher bound, p=∞/q=1 norm bound
//		• Training: Adam or SGD, accuracy per split, Dirichlet energy
//		• Data: GraphSAINT-format directories, stochastic block models
//
// Under the hood, everything is organized under these subpackages:
//
//	builder/    - synthetic graphs: SBM and a fixed four-node path
//	cmd/        - gcntrain, the command-line trainer
//	config/     - defaults → YAML → flags, validation and the zap logger
//	core/       - Graph, masks, normalized adjacency, Dirichlet energy
//	dataset/    - GraphSAINT .npy/.npz/.json loader
//	loss/       - masked cross-entropy and accuracy
//	matrix/     - Dense, CSR and the parallel kernels
//	model/      - the GCN: forward, backward, parameters
//	observe/    - console, zap and Prometheus observers
//	optim/      - Adam and SGD
//	regularize/ - Rademacher penalties and their gradients
//	train/      - the epoch loop
//
// Quick start:
//
//	go run ./cmd/gcntrain --dataset synthetic --epochs 100 --reg-weight 0.001
package gcnreg
